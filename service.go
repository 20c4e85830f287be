package idx2docx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-idx2docx/internal/docx"
	"github.com/alnah/go-idx2docx/internal/fileutil"
)

// outputExtension of the generated document artifact.
const outputExtension = "docx"

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	layout           PageLayout
	styles           TextStyles
	markdownComments bool
}

// Service orchestrates the index-to-document pipeline: parse, sort, group,
// assemble, serialize.
type Service struct {
	cfg        serviceConfig
	comments   commentParser
	newBuilder func() documentBuilder
	progress   ProgressFunc
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithPageLayout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			layout: *DefaultPageLayout(),
			styles: *DefaultTextStyles(),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Comments are verbatim unless Markdown parsing was opted into;
	// parsing rewrites block markers such as "1. " and "# ".
	if s.cfg.markdownComments {
		s.comments = newMarkdownCommentParser()
	} else {
		s.comments = plainCommentParser{}
	}

	// Create document builder factory if not injected (e.g., by tests)
	if s.newBuilder == nil {
		s.newBuilder = func() documentBuilder { return docx.NewBuilder() }
	}

	return s
}

// Convert runs the full pipeline on CSV content and returns the document
// container as bytes. The context is checked between pipeline stages.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	layout, styles, err := s.resolveInput(input)
	if err != nil {
		return nil, err
	}

	rows, err := ParseRows(strings.NewReader(input.CSV))
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	sorted := SortRows(rows)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	asm := &assembler{
		builder:  s.newBuilder(),
		comments: s.comments,
		progress: s.progress,
	}
	return asm.Assemble(sorted, layout, styles)
}

// ConvertFile converts the CSV file at csvPath and writes the document
// into the current working directory as <base>.docx, or to outPath when
// given. It returns the written path.
//
// Preconditions are checked before any row is processed: the input must
// exist and be non-empty, and the output path must not exist. The final
// write is exclusive, so a racing writer cannot be overwritten either; no
// partial document is ever left behind on failure.
func (s *Service) ConvertFile(ctx context.Context, csvPath, outPath string) (string, error) {
	if !fileutil.FileExists(csvPath) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, csvPath)
	}

	content, err := os.ReadFile(csvPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyInput, csvPath)
	}

	if outPath == "" {
		outPath = fileutil.OutputName(csvPath, outputExtension)
	}
	if fileutil.FileExists(outPath) {
		return "", fmt.Errorf("%w: %s", ErrOutputExists, outPath)
	}

	data, err := s.Convert(ctx, Input{CSV: string(content)})
	if err != nil {
		return "", err
	}

	if err := fileutil.WriteNewFile(outPath, data); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrOutputExists, outPath)
		}
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return outPath, nil
}

// resolveInput merges per-call overrides over service defaults and
// validates the result.
func (s *Service) resolveInput(input Input) (PageLayout, TextStyles, error) {
	if input.CSV == "" {
		return PageLayout{}, TextStyles{}, ErrEmptyInput
	}

	layout := s.cfg.layout
	if input.Layout != nil {
		layout = *input.Layout
	}
	if err := layout.Validate(); err != nil {
		return PageLayout{}, TextStyles{}, err
	}

	styles := s.cfg.styles
	if input.Styles != nil {
		styles = *input.Styles
	}
	if err := styles.Validate(); err != nil {
		return PageLayout{}, TextStyles{}, err
	}

	return layout, styles, nil
}
