package render

import (
	"reflect"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "hello", "hello"},
		{"control chars stripped", "a\x00b\x1bc", "abc"},
		{"newline stripped", "a\nb", "ab"},
		{"invalid utf8 dropped", "a\xffb", "ab"},
		{"unicode preserved", "héllo wörld", "héllo wörld"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "added", 10, []string{"added"}},
		{"word wrap", "track added to queue", 12, []string{"track added", "to queue"}},
		{"long word hard wrapped", "aaaaaaaaaaaa", 5, []string{"aaaaa", "aaaaa", "aa"}},
		{"zero limit", "text", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in, tt.limit)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Wrap(%q, %d) = %v, want %v", tt.in, tt.limit, got, tt.want)
			}
		})
	}
}

func TestWrapNeverExceedsLimit(t *testing.T) {
	inputs := []string{
		"a short title",
		"a much longer subtitle explaining what just happened in detail",
		"wide 漢字テキスト mixed with ascii",
	}
	for _, in := range inputs {
		for _, limit := range []int{5, 12, 30} {
			for _, line := range Wrap(in, limit) {
				if Width(line) > limit {
					t.Errorf("Wrap(%q, %d): line %q is %d cells wide", in, limit, line, Width(line))
				}
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 7); Width(got) > 7 {
		t.Errorf("Truncate result %q wider than 7", got)
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("Truncate(%q, 10) = %q, want unchanged", "hi", got)
	}
}
