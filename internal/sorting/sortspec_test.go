package sorting

import "testing"

func TestValidSortColumn(t *testing.T) {
	cases := []struct {
		column, kind string
		want         bool
	}{
		{"word_count", "work", true},
		{"WORD_COUNT", "work", true},
		{"password", "work", false},
		{"position", "question", true},
		{"word_count", "question", false},
		{"id", "nosuchkind", false},
	}
	for _, c := range cases {
		if got := ValidSortColumn(c.column, c.kind); got != c.want {
			t.Errorf("ValidSortColumn(%q, %q) = %v, want %v", c.column, c.kind, got, c.want)
		}
	}
}

func TestSetSortOrder(t *testing.T) {
	cases := []struct {
		column, direction, kind string
		want                    string
	}{
		{"title", "asc", "work", "title ASC"},
		{"TITLE", "ASC", "work", "title ASC"},
		{"title", "sideways", "work", "title DESC"},
		{"password", "sideways", "work", "id DESC"},
		{"", "", "work", "id DESC"},
		{"hits", "desc", "work", "hits DESC"},
	}
	for _, c := range cases {
		if got := SetSortOrder(c.column, c.direction, c.kind); got != c.want {
			t.Errorf("SetSortOrder(%q, %q, %q) = %q, want %q", c.column, c.direction, c.kind, got, c.want)
		}
	}
}
