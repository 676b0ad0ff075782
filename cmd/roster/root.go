package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tsawler/roster"
	"github.com/tsawler/roster/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "roster [input-file]",
	Short: "Extract participant records from conference roster PDFs",
	Long: `Roster extracts participant records (delegation, honorific, name,
affiliation) from conference registration lists into CSV or XLSX.

PDFs with a text layer are read directly; single-column and two-column
page layouts are detected automatically. Scanned PDFs and image files are
rasterized and recognized with Tesseract, which requires a binary built
with the ocr tag and the Tesseract libraries installed.`,
	Example: `  # Extract to the default participants.csv
  roster participants.pdf

  # Write a workbook instead
  roster participants.pdf -o participants.xlsx

  # Force the OCR pipeline on a scanned document
  roster scan.pdf --force-ocr --ocr-dpi 300 --ocr-lang eng+fra

  # Force the two-column strategy with a custom column split
  roster wide.pdf --layout two --x-threshold 300`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runExtract,
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Extraction failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("out", "o", "participants.csv", "Output file path, .csv or .xlsx")
	rootCmd.Flags().String("layout", "auto", "Page layout: auto, one or two")
	rootCmd.Flags().Float64("x-threshold", 260.0, "Column split boundary in page coordinates")
	rootCmd.Flags().Bool("force-ocr", false, "Rasterize and recognize pages even when a text layer exists")
	rootCmd.Flags().Int("ocr-dpi", 300, "Rasterization resolution for OCR")
	rootCmd.Flags().String("ocr-lang", "eng", `Tesseract language(s), e.g. "eng" or "eng+fra"`)
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	// Get flags
	outPath, _ := cmd.Flags().GetString("out")
	layoutFlag, _ := cmd.Flags().GetString("layout")
	xThreshold, _ := cmd.Flags().GetFloat64("x-threshold")
	forceOCR, _ := cmd.Flags().GetBool("force-ocr")
	ocrDPI, _ := cmd.Flags().GetInt("ocr-dpi")
	ocrLang, _ := cmd.Flags().GetString("ocr-lang")

	mode, err := roster.ParseLayoutMode(layoutFlag)
	if err != nil {
		return err
	}

	input := args[0]

	log.Info().
		Str("input", input).
		Str("out", outPath).
		Str("layout", mode.String()).
		Bool("force_ocr", forceOCR).
		Msg("Starting extraction")

	ext := roster.Open(input).
		Layout(mode).
		XThreshold(xThreshold).
		OCRDPI(ocrDPI).
		OCRLanguage(splitLanguages(ocrLang)...)
	if forceOCR {
		ext = ext.ForceOCR()
	}

	n, warnings, err := ext.Write(outPath)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		log.Warn().
			Int("page", w.Page).
			Str("kind", w.Kind.String()).
			Msg(w.Message)
	}

	log.Info().
		Int("rows", n).
		Str("out", outPath).
		Msg("Extraction completed")

	fmt.Printf("Wrote %d rows to %s\n", n, outPath)
	return nil
}

// splitLanguages breaks a Tesseract language spec like "eng+fra" into its
// parts.
func splitLanguages(spec string) []string {
	var langs []string
	for _, l := range strings.Split(spec, "+") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	return langs
}
