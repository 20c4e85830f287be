package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across concerns.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page geometry flags. Zero means "not set".
type pageFlags struct {
	margin  float64
	columns int
}

// textFlags holds document style flags. Zero/empty means "not set".
type textFlags struct {
	bodyFont    string
	bodySize    int
	headingSize int
	topicColor  string
	indent      float64
}

// cliFlags holds all flags for the command.
type cliFlags struct {
	common           commonFlags
	output           string
	page             pageFlags
	text             textFlags
	markdownComments bool
	version          bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed diagnostics")
}

// addPageFlags adds page geometry flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
	fs.IntVar(&f.columns, "columns", 0, "body column count (1-4)")
}

// addTextFlags adds document style flags to a FlagSet.
func addTextFlags(fs *flag.FlagSet, f *textFlags) {
	fs.StringVar(&f.bodyFont, "body-font", "", "body and heading font family")
	fs.IntVar(&f.bodySize, "body-size", 0, "body font size in points (6-96)")
	fs.IntVar(&f.headingSize, "heading-size", 0, "section heading size in points (6-96)")
	fs.StringVar(&f.topicColor, "topic-color", "", "topic accent color (RRGGBB hex)")
	fs.Float64Var(&f.indent, "indent", 0, "hanging indent in inches (0-1.0)")
}

// parseFlags parses command flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("idx2docx", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file path (default <input base>.docx)")
	fs.BoolVar(&f.markdownComments, "markdown-comments", false, "parse inline Markdown in the comment column")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addTextFlags(fs, &f.text)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
