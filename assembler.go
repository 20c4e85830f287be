package idx2docx

import (
	"fmt"

	"github.com/alnah/go-idx2docx/internal/docx"
)

// documentBuilder is the document construction surface the assembler
// drives. The concrete implementation lives in internal/docx; tests
// substitute a recording fake.
type documentBuilder interface {
	SetPageLayout(docx.Layout)
	SetStyles(docx.Styles)
	AddFooterPageNumbers()
	StartSection(oddPage bool)
	AddHeading(text string)
	AddParagraph(runs ...docx.Run)
	Bytes() ([]byte, error)
}

// Compile-time interface implementation check.
var _ documentBuilder = (*docx.Builder)(nil)

// assembler turns sorted rows into a styled document. It exclusively owns
// the builder for the duration of one Assemble call.
type assembler struct {
	builder  documentBuilder
	comments commentParser
	progress ProgressFunc
}

// Assemble configures the document, walks the sorted rows section by
// section, and serializes the result. Every section after the first starts
// on an odd page so each letter begins cleanly when printed double-sided.
func (a *assembler) Assemble(rows []IndexRow, layout PageLayout, styles TextStyles) ([]byte, error) {
	a.builder.SetPageLayout(docx.Layout{
		MarginInches: layout.Margin,
		Columns:      layout.Columns,
	})
	a.builder.SetStyles(docx.Styles{
		BodyFont:            styles.BodyFont,
		BodyPoints:          styles.BodySize,
		TitlePoints:         styles.HeadingSize,
		HangingIndentInches: styles.HangingIndent,
	})
	a.builder.AddFooterPageNumbers()

	for i, sec := range splitSections(rows) {
		if i > 0 {
			a.builder.StartSection(true)
		}
		a.report(sec.Label)
		a.builder.AddHeading(sec.Label)

		for _, row := range sec.Rows {
			a.builder.AddParagraph(a.entryRuns(row, styles.TopicColor)...)
		}
	}

	data, err := a.builder.Bytes()
	if err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}
	return data, nil
}

// entryRuns renders one index row as three run groups: the topic in bold
// accent color, the location marker " [b<book>/p<page>] " in italic, and
// the comment. The marker template is fixed.
func (a *assembler) entryRuns(row IndexRow, topicColor string) []docx.Run {
	runs := []docx.Run{
		{Text: row.Topic, Bold: true, Color: topicColor},
		{Text: " [b" + row.Book + "/p" + row.Page + "] ", Italic: true},
	}
	return append(runs, a.comments.Runs(row.Comment)...)
}

func (a *assembler) report(label string) {
	if a.progress != nil {
		a.progress(label)
	}
}
