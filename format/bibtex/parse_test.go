package bibtex

import (
	"strings"
	"testing"
)

func TestParseSingleLineEntry(t *testing.T) {
	text := `@article{Wrubel2014, title = {{Linked} Data for {Libraries}}, journal = "Code4Lib Journal", volume = 23, number = {4}, pages = {12--20}, year = 2014, publisher = {Code4Lib}}`

	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	e := entries[0]
	if e.Type != "article" || e.Key != "Wrubel2014" {
		t.Errorf("got type %q key %q", e.Type, e.Key)
	}

	want := map[string]string{
		"title":     "{Linked} Data for {Libraries}",
		"journal":   "Code4Lib Journal",
		"volume":    "23",
		"number":    "4",
		"pages":     "12--20",
		"year":      "2014",
		"publisher": "Code4Lib",
	}
	for k, v := range want {
		if got := e.Fields[k]; got != v {
			t.Errorf("field %s: got %q, want %q", k, got, v)
		}
	}
}

func TestParseMultiLineAndCase(t *testing.T) {
	text := `
@Book{key,
  TITLE     = {Metadata},
  Publisher = {ALA Editions},
}
`
	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Type != "book" {
		t.Errorf("type: got %q, want %q", entries[0].Type, "book")
	}
	if got := entries[0].Fields["title"]; got != "Metadata" {
		t.Errorf("title: got %q, want %q", got, "Metadata")
	}
	if got := entries[0].Fields["publisher"]; got != "ALA Editions" {
		t.Errorf("publisher: got %q, want %q", got, "ALA Editions")
	}
}

func TestParseMacrosAndConcatenation(t *testing.T) {
	text := `@comment{ignored @article{no, title={x}} }
@string{c4l = "Code4Lib"}
@preamble{"\newcommand{\noop}[1]{}"}
@article(k, journal = c4l # " Journal", month = may)`

	entries, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if got := entries[0].Fields["journal"]; got != "Code4Lib Journal" {
		t.Errorf("journal: got %q, want %q", got, "Code4Lib Journal")
	}
	if got := entries[0].Fields["month"]; got != "May" {
		t.Errorf("month: got %q, want %q", got, "May")
	}
}

func TestParseEscapedQuoteInQuotedValue(t *testing.T) {
	entries, err := Parse(`@misc{k, title = "G\"{o}del"}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := entries[0].Fields["title"]; got != `G\"{o}del` {
		t.Errorf("title: got %q", got)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		`@article{k, title = {unterminated`,
		`@article{k, title {x}}`,
		`@article{k, title = }}`,
	}
	for _, text := range tests {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q): expected error", text)
		}
	}
}

func TestParseSkipsStrayAt(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"address in comment", "% from x@y.org\n@article{k, title={After email}}", 1},
		{"bare at sign", "@ @article{k, title={x}}", 1},
		{"type without delimiter", "@article k", 0},
		{"trailing at", "@misc{k, title={x}} @", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(entries) != tt.want {
				t.Fatalf("entries = %d, want %d", len(entries), tt.want)
			}
		})
	}

	entries, _ := Parse("% from x@y.org\n@article{k, title={After email}}")
	if got := entries[0].Fields["title"]; got != "After email" {
		t.Errorf("title: got %q, want %q", got, "After email")
	}
}

func TestParseCitationAcceptsAnyEntryType(t *testing.T) {
	f := &Format{}
	tests := []struct {
		text      string
		title     string
		publisher string
	}{
		{`@conference{k, title={Conf Paper}, publisher={IEEE}, pages={1-2}}`, "Conf Paper", "IEEE"},
		{`@manual{k, title={User {Guide}}, publisher={ACM}}`, "User Guide", "ACM"},
		{`@report{k, title={Tech Report}, publisher={NIST}}`, "Tech Report", "NIST"},
		{`@thesis{k, title={On Oxides}, publisher={Lehigh University}}`, "On Oxides", "Lehigh University"},
	}
	for _, tt := range tests {
		fields := f.ParseCitation(tt.text)
		if got, _ := fields.Get("title"); got != tt.title {
			t.Errorf("%s: title got %q, want %q", tt.text, got, tt.title)
		}
		if got, _ := fields.Get("publisher"); got != tt.publisher {
			t.Errorf("%s: publisher got %q, want %q", tt.text, got, tt.publisher)
		}
	}

	fields := f.ParseCitation(tests[0].text)
	if got, _ := fields.Get("pages"); got != "1-2" {
		t.Errorf("pages: got %q, want %q", got, "1-2")
	}
}

func TestParseCitationNormalizesFields(t *testing.T) {
	f := &Format{}
	fields := f.ParseCitation(`@article{k, title = {Caf{\'e} {\&} Society}, pages = {1--5}}`)

	if got, _ := fields.Get("title"); got != "Café & Society" {
		t.Errorf("title: got %q, want %q", got, "Café & Society")
	}
	if got, _ := fields.Get("pages"); got != "1\u20135" {
		t.Errorf("pages: got %q, want %q", got, "1\u20135")
	}
}

func TestParseCitationDegradesToEmpty(t *testing.T) {
	f := &Format{}
	for _, text := range []string{"", "not a citation", "@article{k, title = {"} {
		if fields := f.ParseCitation(text); len(fields) != 0 {
			t.Errorf("ParseCitation(%q): got %v, want empty", text, fields)
		}
	}
}

func TestCanParse(t *testing.T) {
	f := &Format{}
	if !f.CanParse([]byte("  @ARTICLE{x, title={y}}")) {
		t.Error("expected @ARTICLE to be detected")
	}
	if f.CanParse([]byte(strings.Repeat(" ", 4))) {
		t.Error("blank input should not be detected")
	}
}
