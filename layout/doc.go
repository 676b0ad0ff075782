// Package layout provides geometric analysis of positioned text tokens
// for reconstructing the structure of roster pages.
//
// The package works on [model.Token] values in top-down page coordinates
// and builds structure in stages:
//
//   - [LineClusterer] - groups tokens into text lines by vertical position
//   - [ParagraphSegmenter] - groups lines into paragraphs by gap analysis
//   - [CollectHeaders] - identifies all-caps delegation headers
//   - [SplitColumns] - partitions tokens into left/right column streams
//   - [ModeDetector] - decides whether pages use one column or two
//
// # Line Clustering
//
// Tokens are sorted by (top, x0) and chained into lines: a token joins the
// current line while its top is within the tolerance of the previously
// appended token. Line text is assembled per [Granularity]: character
// tokens concatenate directly, word tokens join with spaces.
//
//	clusterer := layout.NewLineClusterer()
//	lines := clusterer.Cluster(tokens, layout.Words)
//
// # Paragraph Segmentation
//
// Lines are split into paragraphs wherever the vertical gap between line
// midpoints exceeds the page's median gap by a configurable factor:
//
//	segmenter := layout.NewParagraphSegmenter()
//	paragraphs := segmenter.Segment(lines)
//
// # Delegation Headers
//
// Headers are single-line paragraphs containing only uppercase letters,
// spaces, and slashes (e.g. "SWITZERLAND / SUISSE / SUIZA"). Each entry
// paragraph resolves its delegation to the nearest header above it:
//
//	headers := layout.CollectHeaders(paragraphs)
//	delegation := layout.ResolveDelegation(headers, paragraph.MidY())
//
// # Configuration
//
// Each component can be configured independently:
//
//	config := layout.DefaultLineConfig()
//	config.YTolerance = 2.0
//	clusterer := layout.NewLineClustererWithConfig(config)
package layout
