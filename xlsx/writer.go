package xlsx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Write writes rows to w as a single-sheet XLSX workbook. Every cell is
// written as an inline string, so the workbook needs no shared string
// table and rows can be streamed in one pass.
func Write(w io.Writer, sheetName string, rows [][]string) error {
	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		doc  any
	}{
		{"[Content_Types].xml", contentTypes()},
		{"_rels/.rels", packageRels()},
		{"xl/workbook.xml", workbook(sheetName)},
		{"xl/_rels/workbook.xml.rels", workbookRels()},
		{"xl/worksheets/sheet1.xml", worksheet(rows)},
	}

	for _, part := range parts {
		if err := writePart(zw, part.name, part.doc); err != nil {
			return err
		}
	}

	return zw.Close()
}

// WriteFile writes rows as a single-sheet XLSX workbook at path
func WriteFile(path, sheetName string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := Write(f, sheetName, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writePart marshals one XML document into the archive
func writePart(zw *zip.Writer, name string, doc any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	if err := xml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("encode part %s: %w", name, err)
	}
	return nil
}

func contentTypes() contentTypesXML {
	return contentTypesXML{
		XMLNS: nsContentTypes,
		Defaults: []defaultTypeXML{
			{Extension: "rels", ContentType: ctRels},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []overrideTypeXML{
			{PartName: "/xl/workbook.xml", ContentType: ctWorkbook},
			{PartName: "/xl/worksheets/sheet1.xml", ContentType: ctWorksheet},
		},
	}
}

func packageRels() relationshipsXML {
	return relationshipsXML{
		XMLNS: nsPackageRels,
		Relationship: []relationshipXML{
			{ID: "rId1", Type: nsRelationships + "/officeDocument", Target: "xl/workbook.xml"},
		},
	}
}

func workbook(sheetName string) workbookXML {
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	return workbookXML{
		XMLNS:  nsSpreadsheetML,
		XMLNSR: nsRelationships,
		Sheets: sheetsXML{
			Sheet: []sheetRefXML{{Name: sheetName, SheetID: 1, RID: "rId1"}},
		},
	}
}

func workbookRels() relationshipsXML {
	return relationshipsXML{
		XMLNS: nsPackageRels,
		Relationship: []relationshipXML{
			{ID: "rId1", Type: nsRelationships + "/worksheet", Target: "worksheets/sheet1.xml"},
		},
	}
}

func worksheet(rows [][]string) worksheetXML {
	ws := worksheetXML{XMLNS: nsSpreadsheetML}
	for i, row := range rows {
		r := rowXML{R: i + 1}
		for j, val := range row {
			r.Cells = append(r.Cells, cellXML{
				R:  CellRef(j, i),
				T:  "inlineStr",
				Is: inlineStrXML{T: val},
			})
		}
		ws.SheetData.Rows = append(ws.SheetData.Rows, r)
	}
	return ws
}
