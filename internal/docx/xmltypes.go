package docx

import "encoding/xml"

// WordprocessingML namespaces.
const (
	nsMain = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// xmlVal is the common single-attribute element <x w:val="..."/>.
type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

// xmlFlag is an empty toggle element such as <w:b/>.
type xmlFlag struct{}

// xmlText carries element text, preserving significant whitespace.
type xmlText struct {
	Space string `xml:"xml:space,attr,omitempty"`
	Value string `xml:",chardata"`
}

// xmlFonts sets the run font for both ASCII and high-ANSI ranges.
type xmlFonts struct {
	ASCII string `xml:"w:ascii,attr,omitempty"`
	HAnsi string `xml:"w:hAnsi,attr,omitempty"`
}

// xmlFldChar delimits a complex field: begin, separate, end.
type xmlFldChar struct {
	Type string `xml:"w:fldCharType,attr"`
}

// xmlRunProps holds run-level formatting. Field order follows the schema.
type xmlRunProps struct {
	Fonts  *xmlFonts `xml:"w:rFonts,omitempty"`
	Bold   *xmlFlag  `xml:"w:b,omitempty"`
	Italic *xmlFlag  `xml:"w:i,omitempty"`
	Color  *xmlVal   `xml:"w:color,omitempty"`
	Size   *xmlVal   `xml:"w:sz,omitempty"`
}

// xmlRun is a text, instruction, or field-delimiter run.
type xmlRun struct {
	XMLName   xml.Name     `xml:"w:r"`
	Props     *xmlRunProps `xml:"w:rPr,omitempty"`
	FldChar   *xmlFldChar  `xml:"w:fldChar,omitempty"`
	InstrText *xmlText     `xml:"w:instrText,omitempty"`
	Text      *xmlText     `xml:"w:t,omitempty"`
}

// xmlParaProps holds paragraph-level formatting. A sectPr here closes the
// section whose content precedes this paragraph.
type xmlParaProps struct {
	Style   *xmlVal    `xml:"w:pStyle,omitempty"`
	Justify *xmlVal    `xml:"w:jc,omitempty"`
	SectPr  *xmlSectPr `xml:"w:sectPr,omitempty"`
}

type xmlParagraph struct {
	XMLName xml.Name      `xml:"w:p"`
	Props   *xmlParaProps `xml:"w:pPr,omitempty"`
	Runs    []xmlRun      `xml:"w:r"`
}

// xmlFooterRef points a section at a footer part by relationship ID.
type xmlFooterRef struct {
	Type string `xml:"w:type,attr"`
	ID   string `xml:"r:id,attr"`
}

type xmlPageSize struct {
	W int `xml:"w:w,attr"`
	H int `xml:"w:h,attr"`
}

type xmlMargins struct {
	Top    int `xml:"w:top,attr"`
	Right  int `xml:"w:right,attr"`
	Bottom int `xml:"w:bottom,attr"`
	Left   int `xml:"w:left,attr"`
	Header int `xml:"w:header,attr"`
	Footer int `xml:"w:footer,attr"`
	Gutter int `xml:"w:gutter,attr"`
}

type xmlColumns struct {
	Num   int `xml:"w:num,attr"`
	Space int `xml:"w:space,attr"`
}

// xmlSectPr describes one section: footer reference, start type, page
// size, margins, and column layout, in schema order.
type xmlSectPr struct {
	XMLName   xml.Name      `xml:"w:sectPr"`
	FooterRef *xmlFooterRef `xml:"w:footerReference,omitempty"`
	Type      *xmlVal       `xml:"w:type,omitempty"`
	PageSize  xmlPageSize   `xml:"w:pgSz"`
	Margins   xmlMargins    `xml:"w:pgMar"`
	Columns   xmlColumns    `xml:"w:cols"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	SectPr     *xmlSectPr     `xml:"w:sectPr"`
}

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	NSMain  string   `xml:"xmlns:w,attr"`
	NSRel   string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlFooter struct {
	XMLName    xml.Name       `xml:"w:ftr"`
	NSMain     string         `xml:"xmlns:w,attr"`
	NSRel      string         `xml:"xmlns:r,attr"`
	Paragraphs []xmlParagraph `xml:"w:p"`
}

// xmlSpacing controls space before/after and line spacing; line 240 with
// rule "auto" is single spacing.
type xmlSpacing struct {
	Before   int    `xml:"w:before,attr"`
	After    int    `xml:"w:after,attr"`
	Line     int    `xml:"w:line,attr"`
	LineRule string `xml:"w:lineRule,attr"`
}

// xmlIndent expresses a hanging indent: left offset plus first-line outdent.
type xmlIndent struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr,omitempty"`
}

type xmlStyleParaProps struct {
	Spacing *xmlSpacing `xml:"w:spacing,omitempty"`
	Indent  *xmlIndent  `xml:"w:ind,omitempty"`
	Justify *xmlVal     `xml:"w:jc,omitempty"`
}

type xmlStyle struct {
	XMLName   xml.Name           `xml:"w:style"`
	Type      string             `xml:"w:type,attr"`
	Default   string             `xml:"w:default,attr,omitempty"`
	ID        string             `xml:"w:styleId,attr"`
	Name      xmlVal             `xml:"w:name"`
	BasedOn   *xmlVal            `xml:"w:basedOn,omitempty"`
	ParaProps *xmlStyleParaProps `xml:"w:pPr,omitempty"`
	RunProps  *xmlRunProps       `xml:"w:rPr,omitempty"`
}

type xmlStyles struct {
	XMLName xml.Name   `xml:"w:styles"`
	NSMain  string     `xml:"xmlns:w,attr"`
	Styles  []xmlStyle `xml:"w:style"`
}
