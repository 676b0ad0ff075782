package xlsx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
	"testing"
)

func writeWorkbook(t *testing.T, rows [][]string) *zip.Reader {
	t.Helper()

	var buf bytes.Buffer
	if err := Write(&buf, "Sheet1", rows); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("Workbook is not a readable zip: %v", err)
	}
	return zr
}

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Open part %s failed: %v", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("Read part %s failed: %v", name, err)
		}
		return string(data)
	}

	t.Fatalf("Part %s not found in workbook", name)
	return ""
}

func TestWrite_WorkbookParts(t *testing.T) {
	zr := writeWorkbook(t, [][]string{{"a"}})

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"xl/workbook.xml",
		"xl/_rels/workbook.xml.rels",
		"xl/worksheets/sheet1.xml",
	}

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true
	}

	for _, name := range want {
		if !names[name] {
			t.Errorf("Expected part %s in workbook", name)
		}
	}
	if len(zr.File) != len(want) {
		t.Errorf("Expected %d parts, got %d", len(want), len(zr.File))
	}
}

func TestWrite_CellValuesAndRefs(t *testing.T) {
	zr := writeWorkbook(t, [][]string{
		{"Delegation", "Honorific"},
		{"KENYA", "Dr."},
	})

	var sheet worksheetXML
	if err := xml.Unmarshal([]byte(readPart(t, zr, "xl/worksheets/sheet1.xml")), &sheet); err != nil {
		t.Fatalf("Unmarshal worksheet failed: %v", err)
	}

	if len(sheet.SheetData.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(sheet.SheetData.Rows))
	}

	first := sheet.SheetData.Rows[0]
	if first.R != 1 {
		t.Errorf("Expected row number 1, got %d", first.R)
	}
	if len(first.Cells) != 2 {
		t.Fatalf("Expected 2 cells, got %d", len(first.Cells))
	}
	if first.Cells[0].R != "A1" || first.Cells[1].R != "B1" {
		t.Errorf("Expected refs A1 and B1, got %s and %s", first.Cells[0].R, first.Cells[1].R)
	}
	if first.Cells[0].T != "inlineStr" {
		t.Errorf("Expected cell type inlineStr, got %q", first.Cells[0].T)
	}
	if first.Cells[0].Is.T != "Delegation" {
		t.Errorf("Expected cell value %q, got %q", "Delegation", first.Cells[0].Is.T)
	}

	second := sheet.SheetData.Rows[1]
	if second.Cells[1].R != "B2" || second.Cells[1].Is.T != "Dr." {
		t.Errorf("Expected B2 = %q, got %s = %q", "Dr.", second.Cells[1].R, second.Cells[1].Is.T)
	}
}

func TestWrite_EscapesSpecialCharacters(t *testing.T) {
	zr := writeWorkbook(t, [][]string{{"Fisheries & Oceans <Dept>", "Sra. María"}})

	content := readPart(t, zr, "xl/worksheets/sheet1.xml")
	if !strings.Contains(content, "Fisheries &amp; Oceans &lt;Dept&gt;") {
		t.Errorf("Expected escaped cell text, got: %s", content)
	}
	if !strings.Contains(content, "Sra. María") {
		t.Errorf("Expected UTF-8 cell text, got: %s", content)
	}
}

func TestWrite_SheetName(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "Participants", [][]string{{"a"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader failed: %v", err)
	}

	workbook := readPart(t, zr, "xl/workbook.xml")
	if !strings.Contains(workbook, `name="Participants"`) {
		t.Errorf("Expected sheet name in workbook part, got: %s", workbook)
	}
	if !strings.Contains(workbook, `r:id="rId1"`) {
		t.Errorf("Expected relationship id in workbook part, got: %s", workbook)
	}
}

func TestWrite_EmptySheetNameDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "", [][]string{{"a"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader failed: %v", err)
	}

	if !strings.Contains(readPart(t, zr, "xl/workbook.xml"), `name="Sheet1"`) {
		t.Error("Expected default sheet name Sheet1")
	}
}

func TestWrite_NoRows(t *testing.T) {
	zr := writeWorkbook(t, nil)

	content := readPart(t, zr, "xl/worksheets/sheet1.xml")
	if !strings.Contains(content, "<sheetData></sheetData>") {
		t.Errorf("Expected empty sheetData element, got: %s", content)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participants.xlsx")

	rows := [][]string{
		{"Delegation", "Honorific", "Person_Name", "Affiliation"},
		{"BAHAMAS", "Mr.", "John Smith", "Ministry of Finance"},
	}
	if err := WriteFile(path, "Sheet1", rows); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Workbook is not a readable zip: %v", err)
	}
	defer zr.Close()

	if len(zr.File) != 5 {
		t.Errorf("Expected 5 parts, got %d", len(zr.File))
	}
}
