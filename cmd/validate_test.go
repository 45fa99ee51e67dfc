package cmd

import (
	"testing"

	_ "github.com/lehigh-university-libraries/orcid2vivo/format/bibtex"
)

func TestCitationStatus(t *testing.T) {
	tests := []struct {
		marker string
		text   string
		want   string
	}{
		{"BIBTEX", "@article{k, title={x}}", "supported"},
		{"BIBTEX", "Smith, J. (2014). A title.", "unrecognised content"},
		{"FORMATTED_APA", "Smith, J. (2014). A title.", "unsupported"},
	}
	for _, tt := range tests {
		if got := citationStatus(tt.marker, tt.text); got != tt.want {
			t.Errorf("citationStatus(%q, %q) = %q, want %q", tt.marker, tt.text, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q, want %q", got, "short")
	}
	if got := truncate("a much longer title", 10); got != "a much ..." {
		t.Errorf("got %q, want %q", got, "a much ...")
	}
}
