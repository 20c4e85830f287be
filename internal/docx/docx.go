// Package docx builds minimal WordprocessingML (.docx) containers: styled
// paragraphs, multi-column sections with odd-page starts, and a footer
// whose page numbers are PAGE/NUMPAGES field codes evaluated by the viewer
// at layout time, never baked in at generation time.
package docx

import (
	"encoding/xml"
	"fmt"
	"math"
)

// Run is a span of text with uniform formatting.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Color  string // RRGGBB hex, empty = automatic
	Font   string // font family, empty = style default
}

// Layout configures page geometry, shared by every section.
type Layout struct {
	MarginInches float64
	Columns      int
}

// Styles configures the two named document styles. "Normal" carries the
// body font, size, and hanging indent; "Title" carries the heading size.
type Styles struct {
	BodyFont            string
	BodyPoints          int
	TitlePoints         int
	HangingIndentInches float64
}

// US letter page size in twips.
const (
	pageWidthTwips  = 12240
	pageHeightTwips = 15840
)

// headerFooterTwips is the header/footer distance from the page edge.
const headerFooterTwips = 720

// columnSpaceTwips is the gap between body columns.
const columnSpaceTwips = 720

// Named style IDs.
const (
	styleNormal = "Normal"
	styleTitle  = "Title"
)

// Relationship IDs inside word/_rels/document.xml.rels.
const (
	relIDStyles = "rId1"
	relIDFooter = "rId2"
)

// paragraph is a styled run sequence; style names a paragraph style ID.
type paragraph struct {
	style string
	runs  []Run
}

// sectionData collects the paragraphs of one document section.
type sectionData struct {
	oddPage bool
	paras   []paragraph
}

// Builder accumulates document content and serializes it to a .docx
// container. It is exclusively owned by one generation pass; methods must
// not be called concurrently.
type Builder struct {
	layout    Layout
	styles    Styles
	hasFooter bool
	sections  []*sectionData
}

// NewBuilder returns a Builder with one open section and neutral defaults.
func NewBuilder() *Builder {
	return &Builder{
		layout: Layout{MarginInches: 1.0, Columns: 1},
		styles: Styles{
			BodyFont:    "Times New Roman",
			BodyPoints:  10,
			TitlePoints: 32,
		},
		sections: []*sectionData{{}},
	}
}

// SetPageLayout sets the page geometry applied to every section.
func (b *Builder) SetPageLayout(l Layout) {
	b.layout = l
}

// SetStyles sets the named style definitions written to styles.xml.
func (b *Builder) SetStyles(s Styles) {
	b.styles = s
}

// AddFooterPageNumbers attaches a centered "Page X of Y" footer to every
// section, expressed as PAGE and NUMPAGES field codes.
func (b *Builder) AddFooterPageNumbers() {
	b.hasFooter = true
}

// StartSection opens a new section; subsequent paragraphs land in it.
// With oddPage set, the section starts on the next odd page when printed.
func (b *Builder) StartSection(oddPage bool) {
	b.sections = append(b.sections, &sectionData{oddPage: oddPage})
}

// AddHeading appends a "Title"-styled paragraph to the current section.
func (b *Builder) AddHeading(text string) {
	b.addParagraph(paragraph{style: styleTitle, runs: []Run{{Text: text}}})
}

// AddParagraph appends a body paragraph with the given runs.
func (b *Builder) AddParagraph(runs ...Run) {
	b.addParagraph(paragraph{runs: runs})
}

func (b *Builder) addParagraph(p paragraph) {
	last := b.sections[len(b.sections)-1]
	last.paras = append(last.paras, p)
}

// Bytes serializes the accumulated document to a .docx container.
func (b *Builder) Bytes() ([]byte, error) {
	documentXML, err := b.documentXML()
	if err != nil {
		return nil, fmt.Errorf("serializing document part: %w", err)
	}

	stylesXML, err := b.stylesXML()
	if err != nil {
		return nil, fmt.Errorf("serializing styles part: %w", err)
	}

	var footerXML []byte
	if b.hasFooter {
		footerXML, err = b.footerXML()
		if err != nil {
			return nil, fmt.Errorf("serializing footer part: %w", err)
		}
	}

	return b.packageParts(documentXML, stylesXML, footerXML)
}

// documentXML renders word/document.xml. Sections other than the last are
// closed by an empty paragraph carrying the section properties; the last
// section's properties sit at the body level.
func (b *Builder) documentXML() ([]byte, error) {
	var body xmlBody

	for i, sec := range b.sections {
		for _, p := range sec.paras {
			body.Paragraphs = append(body.Paragraphs, b.renderParagraph(p))
		}

		props := b.sectionProps(sec)
		if i < len(b.sections)-1 {
			body.Paragraphs = append(body.Paragraphs, xmlParagraph{
				Props: &xmlParaProps{SectPr: props},
			})
		} else {
			body.SectPr = props
		}
	}

	doc := xmlDocument{NSMain: nsMain, NSRel: nsRel, Body: body}
	return marshalPart(doc)
}

// sectionProps renders the sectPr of one section. All sections share page
// geometry and the footer reference; only the start type varies.
func (b *Builder) sectionProps(sec *sectionData) *xmlSectPr {
	props := &xmlSectPr{
		PageSize: xmlPageSize{W: pageWidthTwips, H: pageHeightTwips},
		Margins: xmlMargins{
			Top:    twips(b.layout.MarginInches),
			Right:  twips(b.layout.MarginInches),
			Bottom: twips(b.layout.MarginInches),
			Left:   twips(b.layout.MarginInches),
			Header: headerFooterTwips,
			Footer: headerFooterTwips,
		},
		Columns: xmlColumns{Num: b.layout.Columns, Space: columnSpaceTwips},
	}

	if b.hasFooter {
		props.FooterRef = &xmlFooterRef{Type: "default", ID: relIDFooter}
	}
	if sec.oddPage {
		props.Type = &xmlVal{Val: "oddPage"}
	}

	return props
}

func (b *Builder) renderParagraph(p paragraph) xmlParagraph {
	out := xmlParagraph{}
	if p.style != "" {
		out.Props = &xmlParaProps{Style: &xmlVal{Val: p.style}}
	}
	for _, r := range p.runs {
		out.Runs = append(out.Runs, xmlRun{
			Props: runProps(r),
			Text:  &xmlText{Space: "preserve", Value: r.Text},
		})
	}
	return out
}

// runProps maps Run formatting to rPr; nil when the run is unformatted.
func runProps(r Run) *xmlRunProps {
	if !r.Bold && !r.Italic && r.Color == "" && r.Font == "" {
		return nil
	}

	props := &xmlRunProps{}
	if r.Font != "" {
		props.Fonts = &xmlFonts{ASCII: r.Font, HAnsi: r.Font}
	}
	if r.Bold {
		props.Bold = &xmlFlag{}
	}
	if r.Italic {
		props.Italic = &xmlFlag{}
	}
	if r.Color != "" {
		props.Color = &xmlVal{Val: r.Color}
	}
	return props
}

// footerXML renders word/footer1.xml: a centered paragraph reading
// "Page <PAGE> of <NUMPAGES>" with both counters as field codes.
func (b *Builder) footerXML() ([]byte, error) {
	runs := []xmlRun{
		textRun("Page "),
		fieldCharRun("begin"),
		instrTextRun("PAGE"),
		fieldCharRun("end"),
		textRun(" of "),
		fieldCharRun("begin"),
		instrTextRun("NUMPAGES"),
		fieldCharRun("end"),
	}

	footer := xmlFooter{
		NSMain: nsMain,
		NSRel:  nsRel,
		Paragraphs: []xmlParagraph{{
			Props: &xmlParaProps{Justify: &xmlVal{Val: "center"}},
			Runs:  runs,
		}},
	}
	return marshalPart(footer)
}

func textRun(text string) xmlRun {
	return xmlRun{Text: &xmlText{Space: "preserve", Value: text}}
}

func instrTextRun(instruction string) xmlRun {
	return xmlRun{InstrText: &xmlText{Space: "preserve", Value: instruction}}
}

func fieldCharRun(charType string) xmlRun {
	return xmlRun{FldChar: &xmlFldChar{Type: charType}}
}

// stylesXML renders word/styles.xml with the "Normal" and "Title" styles.
func (b *Builder) stylesXML() ([]byte, error) {
	singleSpaced := &xmlSpacing{Before: 0, After: 0, Line: 240, LineRule: "auto"}
	bodyFonts := &xmlFonts{ASCII: b.styles.BodyFont, HAnsi: b.styles.BodyFont}

	normal := xmlStyle{
		Type:    "paragraph",
		Default: "1",
		ID:      styleNormal,
		Name:    xmlVal{Val: styleNormal},
		ParaProps: &xmlStyleParaProps{
			Spacing: singleSpaced,
			Indent: &xmlIndent{
				Left:    twips(b.styles.HangingIndentInches),
				Hanging: twips(b.styles.HangingIndentInches),
			},
		},
		RunProps: &xmlRunProps{
			Fonts: bodyFonts,
			Size:  &xmlVal{Val: halfPoints(b.styles.BodyPoints)},
		},
	}

	title := xmlStyle{
		Type:    "paragraph",
		ID:      styleTitle,
		Name:    xmlVal{Val: styleTitle},
		BasedOn: &xmlVal{Val: styleNormal},
		ParaProps: &xmlStyleParaProps{
			Spacing: singleSpaced,
			Indent:  &xmlIndent{Left: 0},
			Justify: &xmlVal{Val: "center"},
		},
		RunProps: &xmlRunProps{
			Fonts: bodyFonts,
			Bold:  &xmlFlag{},
			Size:  &xmlVal{Val: halfPoints(b.styles.TitlePoints)},
		},
	}

	styles := xmlStyles{NSMain: nsMain, Styles: []xmlStyle{normal, title}}
	return marshalPart(styles)
}

// marshalPart serializes a part root element with the XML declaration.
func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

// twips converts inches to twentieths of a point.
func twips(inches float64) int {
	return int(math.Round(inches * 1440))
}

// halfPoints renders a point size as the half-point string w:sz expects.
func halfPoints(points int) string {
	return fmt.Sprintf("%d", points*2)
}
