// Package format defines the interfaces for citation-blob parsers and triple
// serializers, and the registry they plug into.
package format

import (
	"io"

	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// Format defines the interface that all format plugins must implement.
type Format interface {
	// Name returns the format identifier (e.g., "bibtex", "ntriples")
	Name() string

	// Description returns a human-readable format description
	Description() string

	// Extensions returns file extensions associated with this format
	Extensions() []string
}

// CitationParser is a format that can read an embedded citation blob into a
// flat field mapping.
type CitationParser interface {
	Format

	// ParseCitation returns the fields of the first entry in text.
	// Values are already normalized to plain text. A blob that cannot be
	// parsed yields an empty mapping, never an error.
	ParseCitation(text string) Fields
}

// Detector is a format that can tell whether content looks like its own.
type Detector interface {
	CanParse(peek []byte) bool
}

// Serializer is a format that can write triples to output.
type Serializer interface {
	Format

	// Serialize writes triples in the order given.
	Serialize(w io.Writer, triples []rdf.Triple) error
}

// Fields is a flat citation field mapping with lower-case keys.
type Fields map[string]string

// Get returns the value of a field if it is present and non-empty.
func (f Fields) Get(key string) (string, bool) {
	v, ok := f[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
