// Package xlsx provides minimal XLSX (Office Open XML Spreadsheet) workbook
// writing.
package xlsx

import "encoding/xml"

// XML namespaces used in XLSX files.
const (
	nsSpreadsheetML = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Content types of the workbook parts.
const (
	ctRels      = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML       = "application/xml"
	ctWorkbook  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
)

// contentTypesXML represents the [Content_Types].xml part.
type contentTypesXML struct {
	XMLName   xml.Name          `xml:"Types"`
	XMLNS     string            `xml:"xmlns,attr"`
	Defaults  []defaultTypeXML  `xml:"Default"`
	Overrides []overrideTypeXML `xml:"Override"`
}

type defaultTypeXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideTypeXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// relationshipsXML represents .rels parts.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	XMLNS        string            `xml:"xmlns,attr"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// workbookXML represents the xl/workbook.xml part.
type workbookXML struct {
	XMLName xml.Name  `xml:"workbook"`
	XMLNS   string    `xml:"xmlns,attr"`
	XMLNSR  string    `xml:"xmlns:r,attr"`
	Sheets  sheetsXML `xml:"sheets"`
}

type sheetsXML struct {
	Sheet []sheetRefXML `xml:"sheet"`
}

type sheetRefXML struct {
	Name    string `xml:"name,attr"`
	SheetID int    `xml:"sheetId,attr"`
	RID     string `xml:"r:id,attr"` // r:id attribute for relationship
}

// worksheetXML represents a xl/worksheets/sheet*.xml part.
type worksheetXML struct {
	XMLName   xml.Name     `xml:"worksheet"`
	XMLNS     string       `xml:"xmlns,attr"`
	SheetData sheetDataXML `xml:"sheetData"`
}

type sheetDataXML struct {
	Rows []rowXML `xml:"row"`
}

type rowXML struct {
	R     int       `xml:"r,attr"` // Row number (1-indexed)
	Cells []cellXML `xml:"c"`
}

type cellXML struct {
	R  string       `xml:"r,attr"` // Cell reference (e.g., "A1")
	T  string       `xml:"t,attr"` // Type: always inlineStr here
	Is inlineStrXML `xml:"is"`
}

type inlineStrXML struct {
	T string `xml:"t"` // Text content
}
