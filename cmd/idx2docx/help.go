package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: idx2docx [flags] <index.csv>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a 4-column index CSV (TOPIC, BK#, PG#, COMMENTS) into a printable")
	fmt.Fprintln(w, "two-column Word document, sorted alphabetically with per-letter sections")
	fmt.Fprintln(w, "and a \"Page X of Y\" footer.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  index.csv    UTF-8 comma-delimited index file, no header row")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file path (default <input base>.docx)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w, "      --columns <n>         Body column count (1-4)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Text:")
	fmt.Fprintln(w, "      --body-font <s>       Body and heading font family")
	fmt.Fprintln(w, "      --body-size <n>       Body font size in points (6-96)")
	fmt.Fprintln(w, "      --heading-size <n>    Section heading size in points (6-96)")
	fmt.Fprintln(w, "      --topic-color <s>     Topic accent color (RRGGBB hex)")
	fmt.Fprintln(w, "      --indent <f>          Hanging indent in inches (0-1.0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Comments:")
	fmt.Fprintln(w, "      --markdown-comments   Parse inline Markdown in the comment column")
	fmt.Fprintln(w, "                            (default: comments are copied verbatim)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed diagnostics")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The output file is never overwritten; generation aborts if it exists.")
}
