// Package csv provides a serializer plugin that writes triples as a
// spreadsheet-friendly table.
package csv

import (
	"github.com/lehigh-university-libraries/orcid2vivo/format"
)

// Format implements the CSV triple table format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "csv"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "Comma-separated triple table (subject, predicate, object, kind, datatype)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"csv"}
}

func init() {
	format.Register(&Format{})
}
