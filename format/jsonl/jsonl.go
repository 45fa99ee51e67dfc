// Package jsonl provides a serializer plugin that writes one JSON object
// per triple, for loading into document stores and line-oriented tools.
package jsonl

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// Format implements the JSON Lines triple format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "jsonl"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "JSON Lines, one triple per line"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"jsonl", "ndjson"}
}

// Statement is the JSON shape of one triple.
type Statement struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
	Kind      string `json:"kind"`
	Datatype  string `json:"datatype,omitempty"`
}

// Serialize writes one Statement per line.
func (f *Format) Serialize(w io.Writer, triples []rdf.Triple) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	for _, t := range triples {
		stmt := Statement{
			Subject:   t.Subject,
			Predicate: t.Predicate,
			Object:    t.Object.Value,
			Kind:      t.Object.Kind.String(),
			Datatype:  t.Object.Datatype,
		}
		if err := encoder.Encode(stmt); err != nil {
			return fmt.Errorf("encoding triple: %w", err)
		}
	}
	return nil
}

func init() {
	format.Register(&Format{})
}
