// Package ntriples provides a serializer plugin for W3C N-Triples.
package ntriples

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// Format implements the N-Triples format.
type Format struct{}

// Ensure Format implements the interfaces
var (
	_ format.Format     = (*Format)(nil)
	_ format.Serializer = (*Format)(nil)
)

// Name returns the format identifier.
func (f *Format) Name() string {
	return "ntriples"
}

// Description returns a human-readable format description.
func (f *Format) Description() string {
	return "W3C N-Triples (RDF 1.1)"
}

// Extensions returns file extensions associated with this format.
func (f *Format) Extensions() []string {
	return []string{"nt"}
}

// Serialize writes one statement per line.
func (f *Format) Serialize(w io.Writer, triples []rdf.Triple) error {
	bw := bufio.NewWriter(w)
	for _, t := range triples {
		if _, err := bw.WriteString(Line(t)); err != nil {
			return fmt.Errorf("writing triple: %w", err)
		}
	}
	return bw.Flush()
}

// Line renders a triple as a terminated N-Triples statement.
func Line(t rdf.Triple) string {
	var sb strings.Builder
	writeIRI(&sb, t.Subject)
	sb.WriteByte(' ')
	writeIRI(&sb, t.Predicate)
	sb.WriteByte(' ')
	if t.Object.IsIRI() {
		writeIRI(&sb, t.Object.Value)
	} else {
		writeLiteral(&sb, t.Object)
	}
	sb.WriteString(" .\n")
	return sb.String()
}

func writeIRI(sb *strings.Builder, iri string) {
	sb.WriteByte('<')
	for _, r := range iri {
		switch {
		case r <= 0x20, strings.ContainsRune("<>\"{}|^`\\", r):
			fmt.Fprintf(sb, "\\u%04X", r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('>')
}

func writeLiteral(sb *strings.Builder, lit rdf.Term) {
	sb.WriteByte('"')
	for _, r := range lit.Value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, "\\u%04X", r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	if lit.Datatype != "" {
		sb.WriteString("^^")
		writeIRI(sb, lit.Datatype)
	}
}

func init() {
	format.Register(&Format{})
}
