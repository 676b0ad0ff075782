// Package writer persists extracted participant records to disk in CSV or
// XLSX form, chosen from the output path's extension.
package writer

import (
	"encoding/csv"
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"

	"github.com/tsawler/roster/format"
	"github.com/tsawler/roster/model"
	"github.com/tsawler/roster/xlsx"
)

// Write stores records at path with a leading header row. Paths ending in
// .xlsx or .xls produce an XLSX workbook; everything else produces UTF-8
// CSV. The returned count excludes the header row.
func Write(path string, records []model.Record) (int, error) {
	var err error
	if format.Detect(path).IsSpreadsheet() {
		err = writeXLSX(path, records)
	} else {
		err = writeCSV(path, records)
	}
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// rows prepends the header row to the record fields
func rows(records []model.Record) [][]string {
	out := make([][]string, 0, len(records)+1)
	out = append(out, model.RecordColumns)
	for _, r := range records {
		out = append(out, r.Fields())
	}
	return out
}

func writeXLSX(path string, records []model.Record) error {
	return xlsx.WriteFile(path, "Sheet1", rows(records))
}

func writeCSV(path string, records []model.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	// The byte order mark lets spreadsheet tools detect UTF-8
	w := csv.NewWriter(unicode.UTF8BOM.NewEncoder().Writer(f))
	w.UseCRLF = true

	if err := w.WriteAll(rows(records)); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
