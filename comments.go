package idx2docx

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"

	"github.com/alnah/go-idx2docx/internal/docx"
)

// commentParser turns a comment column value into document runs.
type commentParser interface {
	Runs(comment string) []docx.Run
}

// plainCommentParser copies the comment verbatim into a single run.
type plainCommentParser struct{}

func (plainCommentParser) Runs(comment string) []docx.Run {
	if comment == "" {
		return nil
	}
	return []docx.Run{{Text: comment}}
}

// markdownCommentParser maps inline Markdown in the comment column to run
// formatting: *text* becomes italic, **text** bold, `text` monospace.
// Structure beyond inline emphasis is flattened to plain text, and block
// markers such as "1. " or "# " are consumed by the parse, so this parser
// is opt-in; the default pipeline copies comments verbatim.
type markdownCommentParser struct {
	md goldmark.Markdown
}

func newMarkdownCommentParser() *markdownCommentParser {
	return &markdownCommentParser{md: goldmark.New()}
}

func (p *markdownCommentParser) Runs(comment string) []docx.Run {
	if comment == "" {
		return nil
	}

	source := []byte(comment)
	root := p.md.Parser().Parse(gmtext.NewReader(source))

	var runs []docx.Run
	collectRuns(root, source, runFormat{}, &runs)
	if len(runs) == 0 {
		return []docx.Run{{Text: comment}}
	}
	return runs
}

// runFormat is the formatting state accumulated while descending the
// inline tree.
type runFormat struct {
	bold   bool
	italic bool
	mono   bool
}

// collectRuns flattens the node's children into runs, merging adjacent
// text with identical formatting.
func collectRuns(node ast.Node, source []byte, format runFormat, out *[]docx.Run) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Emphasis:
			nested := format
			if n.Level >= 2 {
				nested.bold = true
			} else {
				nested.italic = true
			}
			collectRuns(n, source, nested, out)

		case *ast.CodeSpan:
			nested := format
			nested.mono = true
			collectRuns(n, source, nested, out)

		case *ast.Text:
			appendRun(out, string(n.Segment.Value(source)), format)
			if n.SoftLineBreak() || n.HardLineBreak() {
				appendRun(out, " ", format)
			}

		case *ast.String:
			appendRun(out, string(n.Value), format)

		case *ast.AutoLink:
			appendRun(out, string(n.URL(source)), format)

		case *ast.FencedCodeBlock, *ast.CodeBlock:
			appendCodeLines(child, source, format, out)

		default:
			collectRuns(child, source, format, out)
			if child.Type() == ast.TypeBlock && child.NextSibling() != nil {
				appendRun(out, " ", format)
			}
		}
	}
}

// appendCodeLines flattens a code block's raw lines into monospace runs.
// Block nodes keep their text in Lines(), not in child nodes.
func appendCodeLines(node ast.Node, source []byte, format runFormat, out *[]docx.Run) {
	format.mono = true
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		appendRun(out, strings.TrimRight(string(seg.Value(source)), "\n"), format)
		if i < lines.Len()-1 {
			appendRun(out, " ", format)
		}
	}
}

func appendRun(out *[]docx.Run, text string, format runFormat) {
	if text == "" {
		return
	}

	run := docx.Run{Text: text, Bold: format.bold, Italic: format.italic}
	if format.mono {
		run.Font = monoFont
	}

	if n := len(*out); n > 0 {
		prev := &(*out)[n-1]
		if prev.Bold == run.Bold && prev.Italic == run.Italic && prev.Font == run.Font && prev.Color == run.Color {
			prev.Text += run.Text
			return
		}
	}
	*out = append(*out, run)
}
