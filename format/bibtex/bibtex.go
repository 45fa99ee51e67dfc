// Package bibtex provides a citation parser plugin for BibTeX entries
// embedded in profile records, and the text normalizer that turns LaTeX
// markup in field values into plain Unicode text.
package bibtex

import (
	"bytes"
	"log/slog"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
)

// Version documents the BibTeX specification this implementation targets.
const Version = "bibtex-1988+biblatex"

// Format implements the BibTeX format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format         = (*Format)(nil)
	_ format.CitationParser = (*Format)(nil)
	_ format.Detector       = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "bibtex"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "BibTeX bibliography format"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"bib", "bibtex"}
}

// CanParse returns true if the input looks like BibTeX.
func (f *Format) CanParse(peek []byte) bool {
	peek = bytes.TrimSpace(peek)
	if len(peek) == 0 {
		return false
	}

	// BibTeX entries start with @
	bibtexPatterns := [][]byte{
		[]byte("@article"),
		[]byte("@book"),
		[]byte("@inproceedings"),
		[]byte("@misc"),
		[]byte("@phdthesis"),
		[]byte("@mastersthesis"),
		[]byte("@techreport"),
		[]byte("@incollection"),
		[]byte("@inbook"),
		[]byte("@proceedings"),
		[]byte("@unpublished"),
		[]byte("@online"),
		[]byte("@string"),
		[]byte("@preamble"),
		[]byte("@dataset"),
		[]byte("@software"),
	}

	lowerPeek := bytes.ToLower(peek)
	for _, pattern := range bibtexPatterns {
		if bytes.Contains(lowerPeek, pattern) {
			return true
		}
	}

	return false
}

// ParseCitation returns the normalized fields of the first entry in text.
// Any entry type is accepted. Malformed input, or input without an entry,
// degrades to an empty mapping.
func (f *Format) ParseCitation(text string) format.Fields {
	fields := format.Fields{}
	entries, err := Parse(text)
	if err != nil {
		slog.Warn("malformed bibtex citation", "error", err)
		return fields
	}
	if len(entries) == 0 {
		slog.Warn("bibtex citation has no entries")
		return fields
	}

	for k, v := range entries[0].Fields {
		fields[k] = Normalize(v)
	}
	return fields
}

func init() {
	format.Register(&Format{})
}
