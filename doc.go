// Package idx2docx converts a tabular course index (topic, book number,
// page number, comment) into a printable two-column Word document.
//
// # Quick Start
//
// Create a service and convert a CSV file:
//
//	svc := idx2docx.New()
//	outPath, err := svc.ConvertFile(ctx, "gcih.csv", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("created", outPath)
//
// ConvertFile derives the output name from the input base name
// ("gcih.csv" -> "gcih.docx" in the current directory) and refuses to
// overwrite an existing file.
//
// To work on in-memory content instead, use Convert, which returns the
// .docx container as bytes:
//
//	data, err := svc.Convert(ctx, idx2docx.Input{CSV: csvContent})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. CSV parsing into four-field index rows (encoding/csv)
//  2. Stable sort by folded topic, book number, page number, folded comment
//  3. Grouping into per-letter sections behind an initial "#" section
//  4. Document assembly via the WordprocessingML builder (two-column
//     layout, odd-page section starts, "Page X of Y" field footer)
//
// Rows are compared with full Unicode case folding on the topic and
// comment columns; book and page numbers compare lexically, not
// numerically, so "10" orders before "9". Non-alphabetic leading
// characters collect in the "#" section. Both behaviors are long-standing
// properties of existing indexes and are preserved deliberately.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	svc := idx2docx.New(
//	    idx2docx.WithPageLayout(idx2docx.PageLayout{Margin: 0.5, Columns: 3}),
//	    idx2docx.WithProgress(func(label string) { fmt.Println(label) }),
//	    idx2docx.WithMarkdownComments(),
//	)
//
// By default the comment column is copied into the document verbatim.
// WithMarkdownComments scans it for inline Markdown emphasis (*italic*,
// **bold**, `code`) and turns that into run formatting instead; the
// markup characters themselves are then consumed.
package idx2docx
