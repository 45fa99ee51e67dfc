package csv

import (
	"encoding/csv"
	"io"

	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// Columns is the header row.
var Columns = []string{"subject", "predicate", "object", "kind", "datatype"}

// Serialize writes a header row followed by one row per triple.
func (f *Format) Serialize(w io.Writer, triples []rdf.Triple) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(Columns); err != nil {
		return err
	}

	for _, t := range triples {
		row := []string{t.Subject, t.Predicate, t.Object.Value, t.Object.Kind.String(), t.Object.Datatype}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
