package idx2docx

import (
	"fmt"
)

// IndexRow is one topic/location/comment record from the source table.
// Book and Page stay as text and compare lexically, never numerically.
type IndexRow struct {
	Topic   string
	Book    string
	Page    string
	Comment string
}

// rowFieldCount is the fixed column count of the source table.
const rowFieldCount = 4

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.75
)

// Column bounds for the body section.
const (
	MinColumns     = 1
	MaxColumns     = 4
	DefaultColumns = 2
)

// Font size bounds in points.
const (
	MinFontSize = 6
	MaxFontSize = 96
)

// Hanging indent bounds in inches.
const (
	MaxHangingIndent     = 1.0
	DefaultHangingIndent = 0.1
)

// Default text style values.
const (
	DefaultBodyFont    = "Times New Roman"
	DefaultBodySize    = 10
	DefaultHeadingSize = 32
	DefaultTopicColor  = "1667FF"
)

// monoFont is used for `code` spans in Markdown comments.
const monoFont = "Courier New"

// PageLayout configures page geometry for the body sections.
type PageLayout struct {
	Margin  float64 // inches, applied to all sides
	Columns int     // body column count
}

// DefaultPageLayout returns the layout used for printed index booklets:
// 0.75 inch margins and a two-column body.
func DefaultPageLayout() *PageLayout {
	return &PageLayout{
		Margin:  DefaultMargin,
		Columns: DefaultColumns,
	}
}

// Validate checks that layout values are within bounds.
// Returns nil if p is nil (nil means use defaults).
func (p *PageLayout) Validate() error {
	if p == nil {
		return nil
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	if p.Columns < MinColumns || p.Columns > MaxColumns {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidColumns, p.Columns, MinColumns, MaxColumns)
	}

	return nil
}

// TextStyles configures the named document styles and the topic accent.
type TextStyles struct {
	BodyFont      string  // body and heading font family
	BodySize      int     // points, "Normal" style
	HeadingSize   int     // points, "Title" style (section letters)
	TopicColor    string  // RRGGBB hex, topic run accent
	HangingIndent float64 // inches, body paragraph outdent
}

// DefaultTextStyles returns the styles of the original printed layout:
// Times New Roman, 10pt body with a 0.1 inch hanging indent, 32pt section
// headings, and a blue topic accent.
func DefaultTextStyles() *TextStyles {
	return &TextStyles{
		BodyFont:      DefaultBodyFont,
		BodySize:      DefaultBodySize,
		HeadingSize:   DefaultHeadingSize,
		TopicColor:    DefaultTopicColor,
		HangingIndent: DefaultHangingIndent,
	}
}

// Validate checks that style values are within bounds.
// Returns nil if t is nil (nil means use defaults).
func (t *TextStyles) Validate() error {
	if t == nil {
		return nil
	}

	if t.BodyFont == "" {
		return ErrEmptyFontName
	}

	if t.BodySize < MinFontSize || t.BodySize > MaxFontSize {
		return fmt.Errorf("%w: body %d (must be between %d and %d)", ErrInvalidFontSize, t.BodySize, MinFontSize, MaxFontSize)
	}

	if t.HeadingSize < MinFontSize || t.HeadingSize > MaxFontSize {
		return fmt.Errorf("%w: heading %d (must be between %d and %d)", ErrInvalidFontSize, t.HeadingSize, MinFontSize, MaxFontSize)
	}

	if !isHexColor(t.TopicColor) {
		return fmt.Errorf("%w: %q (must be RRGGBB hex)", ErrInvalidColor, t.TopicColor)
	}

	if t.HangingIndent < 0 || t.HangingIndent > MaxHangingIndent {
		return fmt.Errorf("%w: %.2f (must be between 0 and %.2f)", ErrInvalidIndent, t.HangingIndent, MaxHangingIndent)
	}

	return nil
}

// isHexColor checks for a six-digit RRGGBB hex value without a leading '#'.
func isHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Input contains conversion parameters for a single run.
type Input struct {
	CSV    string      // raw CSV content (required)
	Layout *PageLayout // page geometry (optional, nil = service defaults)
	Styles *TextStyles // document styles (optional, nil = service defaults)
}

// ProgressFunc receives one call per document section as assembly reaches
// it, with the section label ("#", "Aa", "Bb", ...). Observational only.
type ProgressFunc func(label string)

// Option configures a Service.
type Option func(*Service)

// WithPageLayout sets the default page layout for the service.
func WithPageLayout(l PageLayout) Option {
	return func(s *Service) {
		s.cfg.layout = l
	}
}

// WithTextStyles sets the default text styles for the service.
func WithTextStyles(t TextStyles) Option {
	return func(s *Service) {
		s.cfg.styles = t
	}
}

// WithMarkdownComments enables inline Markdown parsing of the comment
// column. Without it comments are copied verbatim.
func WithMarkdownComments() Option {
	return func(s *Service) {
		s.cfg.markdownComments = true
	}
}

// WithProgress sets the progress callback invoked per section.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Service) {
		s.progress = fn
	}
}
