package idx2docx

import (
	"testing"
)

// topicsOnly builds rows where only the topic matters.
func topicsOnly(topics ...string) []IndexRow {
	rows := make([]IndexRow, len(topics))
	for i, topic := range topics {
		rows[i] = IndexRow{Topic: topic, Book: "1", Page: "1", Comment: ""}
	}
	return rows
}

func TestSplitSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		topics     []string
		wantLabels []string
		wantCounts []int
	}{
		{
			name:       "one boundary per distinct leading letter",
			topics:     []string{"alpha", "axe", "bat", "bee", "bug", "cat"},
			wantLabels: []string{"#", "Aa", "Bb", "Cc"},
			wantCounts: []int{0, 2, 3, 1},
		},
		{
			name:       "upper and lower case share a section",
			topics:     []string{"apple", "Apple", "APPLE"},
			wantLabels: []string{"#", "Aa"},
			wantCounts: []int{0, 3},
		},
		{
			name:       "non-alphabetic topics collect in the hash section",
			topics:     []string{"10 steps", "42 tips", "@handle"},
			wantLabels: []string{"#"},
			wantCounts: []int{3},
		},
		{
			name:       "mixed leading characters",
			topics:     []string{"7zip", "apple", "zebra"},
			wantLabels: []string{"#", "Aa", "Zz"},
			wantCounts: []int{1, 1, 1},
		},
		{
			name:       "letters skipped are not materialized",
			topics:     []string{"apple", "zebra"},
			wantLabels: []string{"#", "Aa", "Zz"},
			wantCounts: []int{0, 1, 1},
		},
		{
			name:       "accented letter opens its own section",
			topics:     []string{"zebra", "émigré"},
			wantLabels: []string{"#", "Zz", "Éé"},
			wantCounts: []int{0, 1, 1},
		},
		{
			name:       "brace folds above z and opens a section",
			topics:     []string{"zeta", "{brace}"},
			wantLabels: []string{"#", "Zz", "{{"},
			wantCounts: []int{0, 1, 1},
		},
		{
			name:       "empty topic stays in the hash section",
			topics:     []string{"", "apple"},
			wantLabels: []string{"#", "Aa"},
			wantCounts: []int{1, 1},
		},
		{
			name:       "no rows still yields the hash section",
			topics:     nil,
			wantLabels: []string{"#"},
			wantCounts: []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sections := splitSections(topicsOnly(tt.topics...))

			if len(sections) != len(tt.wantLabels) {
				t.Fatalf("splitSections() produced %d sections, want %d", len(sections), len(tt.wantLabels))
			}
			for i, sec := range sections {
				if sec.Label != tt.wantLabels[i] {
					t.Errorf("section[%d].Label = %q, want %q", i, sec.Label, tt.wantLabels[i])
				}
				if len(sec.Rows) != tt.wantCounts[i] {
					t.Errorf("section[%d] has %d rows, want %d", i, len(sec.Rows), tt.wantCounts[i])
				}
			}
		})
	}
}

func TestSplitSectionsKeepsRowOrder(t *testing.T) {
	t.Parallel()

	rows := topicsOnly("ant", "ape", "bee")
	sections := splitSections(rows)

	if len(sections) != 3 {
		t.Fatalf("splitSections() produced %d sections, want 3", len(sections))
	}
	if sections[1].Rows[0].Topic != "ant" || sections[1].Rows[1].Topic != "ape" {
		t.Errorf("section Aa rows out of order: %v", sections[1].Rows)
	}
	if sections[2].Rows[0].Topic != "bee" {
		t.Errorf("section Bb rows wrong: %v", sections[2].Rows)
	}
}

func TestSectionLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lead     rune
		expected string
	}{
		{name: "ascii letter", lead: 'a', expected: "Aa"},
		{name: "accented letter", lead: 'é', expected: "Éé"},
		{name: "non-letter repeats", lead: '{', expected: "{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sectionLabel(tt.lead); got != tt.expected {
				t.Errorf("sectionLabel(%q) = %q, want %q", tt.lead, got, tt.expected)
			}
		})
	}
}
