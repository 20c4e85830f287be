package idx2docx

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// ParseRows reads comma-delimited index rows from r. Every row must have
// exactly four fields (TOPIC, BK#, PG#, COMMENTS); there is no header row.
// Blank lines are skipped rather than treated as malformed rows, so row
// numbers in errors count data rows only. Empty input yields an empty,
// valid row set.
func ParseRows(r io.Reader) ([]IndexRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows []IndexRow
	for rowNum := 1; ; rowNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, rowNum, err)
		}
		if len(record) != rowFieldCount {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedRow, rowNum, len(record), rowFieldCount)
		}
		rows = append(rows, IndexRow{
			Topic:   record[0],
			Book:    record[1],
			Page:    record[2],
			Comment: record[3],
		})
	}
}

// sortKey is the derived comparison tuple for an index row. Topic and
// comment are stored case-folded; book and page stay verbatim.
type sortKey struct {
	topic   string
	book    string
	page    string
	comment string
}

// compare orders keys field by field. Strings compare bytewise, which for
// valid UTF-8 matches code point order.
func (k sortKey) compare(o sortKey) int {
	if c := strings.Compare(k.topic, o.topic); c != 0 {
		return c
	}
	if c := strings.Compare(k.book, o.book); c != 0 {
		return c
	}
	if c := strings.Compare(k.page, o.page); c != 0 {
		return c
	}
	return strings.Compare(k.comment, o.comment)
}

// SortRows returns a new slice ordered by (folded topic, book, page,
// folded comment), ascending. The sort is stable: rows with equal keys
// keep their input order. Case folding is full Unicode folding, so
// ordering is locale-independent; digits and most punctuation sort before
// letters, which existing indexes rely on.
func SortRows(rows []IndexRow) []IndexRow {
	fold := cases.Fold()

	type keyedRow struct {
		key sortKey
		row IndexRow
	}

	keyed := make([]keyedRow, len(rows))
	for i, row := range rows {
		keyed[i] = keyedRow{
			key: sortKey{
				topic:   fold.String(row.Topic),
				book:    row.Book,
				page:    row.Page,
				comment: fold.String(row.Comment),
			},
			row: row,
		}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRow) int {
		return a.key.compare(b.key)
	})

	sorted := make([]IndexRow, len(rows))
	for i, kr := range keyed {
		sorted[i] = kr.row
	}
	return sorted
}
