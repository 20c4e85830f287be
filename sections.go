package idx2docx

import (
	"unicode"

	"golang.org/x/text/cases"
)

// nonAlphaLabel heads the initial section, which collects rows whose topic
// does not start with a letter.
const nonAlphaLabel = "#"

// sectionCursorStart is the character directly below 'a'; the first letter
// row always compares above it and opens the first lettered section.
const sectionCursorStart = '`'

// section is a contiguous run of sorted rows under one heading.
type section struct {
	Label string
	Rows  []IndexRow
}

// splitSections groups sorted rows into document sections with a single
// linear scan. The "#" section always exists, even when empty. A new
// section opens when a row's folded leading rune rises above the letter
// cursor; the cursor never moves backward, so rows sorting below it (digits,
// most punctuation) stay in the "#" section. Characters such as '{' or '~'
// fold above 'z' and open their own sections; that matches the historical
// ordering and must not be corrected here.
func splitSections(rows []IndexRow) []section {
	fold := cases.Fold()

	sections := []section{{Label: nonAlphaLabel}}
	cursor := rune(sectionCursorStart)

	for _, row := range rows {
		lead := leadingRune(fold.String(row.Topic))
		if lead > cursor {
			cursor = lead
			sections = append(sections, section{Label: sectionLabel(lead)})
		}
		last := len(sections) - 1
		sections[last].Rows = append(sections[last].Rows, row)
	}

	return sections
}

// leadingRune returns the first rune of s, or 0 for an empty string.
func leadingRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// sectionLabel renders a section heading as the upper-then-lower form of
// its leading character, e.g. 'a' -> "Aa".
func sectionLabel(lead rune) string {
	return string(unicode.ToUpper(lead)) + string(unicode.ToLower(lead))
}
