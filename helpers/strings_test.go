package helpers

import "testing"

func TestJoinNonEmpty(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"Jane", "Smith"}, "Jane Smith"},
		{[]string{"", "Smith"}, "Smith"},
		{[]string{"Jane", ""}, "Jane"},
		{[]string{"", ""}, ""},
	}
	for _, tt := range tests {
		if got := JoinNonEmpty(" ", tt.parts...); got != tt.want {
			t.Errorf("JoinNonEmpty(%q) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  a \n\t b  "); got != "a b" {
		t.Errorf("NormalizeWhitespace() = %q, want %q", got, "a b")
	}
}
