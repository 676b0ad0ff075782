// Package model provides the data types shared by the extraction pipeline.
//
// The pipeline's input unit is the [Token]: one positioned piece of page
// text, either a single character from a document's text layer or a whole
// word from word-level extraction or OCR. Geometry uses top-down page
// coordinates, so Top grows toward the bottom of the page.
//
// The pipeline's output unit is the [Record]: one participant row with
// delegation, honorific, person name, and affiliation. Serialized output
// uses the column names in [RecordColumns], in that order.
package model
