package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	idx2docx "github.com/alnah/go-idx2docx"
	"github.com/alnah/go-idx2docx/internal/config"
	"github.com/alnah/go-idx2docx/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no input CSV file specified")
	ErrTooManyArgs  = errors.New("expected exactly one input CSV file")
	ErrBadExtension = errors.New("invalid output extension")
)

// run loads configuration, builds the service, and converts the one input
// file named by the positional argument.
func run(flags *cliFlags, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return ErrNoInput
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: got %d arguments", ErrTooManyArgs, len(args))
	}
	inputPath := args[0]

	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	outPath, err := resolveOutputPath(flags.output, inputPath, cfg)
	if err != nil {
		return err
	}

	opts := serviceOptions(flags, cfg, stdout)
	svc := idx2docx.New(opts...)

	if flags.common.verbose {
		fmt.Fprintf(os.Stderr, "Input: %s\nOutput: %s\n", inputPath, outPath)
	}

	createdPath, err := svc.ConvertFile(context.Background(), inputPath, outPath)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		printCreated(stdout, createdPath)
	}
	return nil
}

// mergeFlags overlays set CLI flags onto the loaded config.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.page.margin != 0 {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.page.columns != 0 {
		cfg.Page.Columns = flags.page.columns
	}
	if flags.text.bodyFont != "" {
		cfg.Text.BodyFont = flags.text.bodyFont
	}
	if flags.text.bodySize != 0 {
		cfg.Text.BodySize = flags.text.bodySize
	}
	if flags.text.headingSize != 0 {
		cfg.Text.HeadingSize = flags.text.headingSize
	}
	if flags.text.topicColor != "" {
		cfg.Text.TopicColor = flags.text.topicColor
	}
	if flags.text.indent != 0 {
		cfg.Text.HangingIndent = flags.text.indent
	}
	if flags.markdownComments {
		cfg.Comments.Markdown = true
	}
}

// resolveOutputPath picks the explicit -o path, or derives the output name
// from the input base name and the configured extension.
func resolveOutputPath(flagOutput, inputPath string, cfg *config.Config) (string, error) {
	if flagOutput != "" {
		return flagOutput, nil
	}

	extension := cfg.Output.Extension
	if extension == "" {
		return "", nil // ConvertFile derives <base>.docx
	}
	if err := fileutil.ValidateExtension(extension); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadExtension, err)
	}
	return fileutil.OutputName(inputPath, extension), nil
}

// serviceOptions maps merged configuration to library options.
func serviceOptions(flags *cliFlags, cfg *config.Config, stdout io.Writer) []idx2docx.Option {
	layout := idx2docx.DefaultPageLayout()
	if cfg.Page.Margin != 0 {
		layout.Margin = cfg.Page.Margin
	}
	if cfg.Page.Columns != 0 {
		layout.Columns = cfg.Page.Columns
	}

	styles := idx2docx.DefaultTextStyles()
	if cfg.Text.BodyFont != "" {
		styles.BodyFont = cfg.Text.BodyFont
	}
	if cfg.Text.BodySize != 0 {
		styles.BodySize = cfg.Text.BodySize
	}
	if cfg.Text.HeadingSize != 0 {
		styles.HeadingSize = cfg.Text.HeadingSize
	}
	if cfg.Text.TopicColor != "" {
		styles.TopicColor = cfg.Text.TopicColor
	}
	if cfg.Text.HangingIndent != 0 {
		styles.HangingIndent = cfg.Text.HangingIndent
	}

	opts := []idx2docx.Option{
		idx2docx.WithPageLayout(*layout),
		idx2docx.WithTextStyles(*styles),
	}
	if cfg.Comments.Markdown {
		opts = append(opts, idx2docx.WithMarkdownComments())
	}
	if !flags.common.quiet {
		opts = append(opts, idx2docx.WithProgress(func(label string) {
			printProgress(stdout, label)
		}))
	}
	return opts
}
