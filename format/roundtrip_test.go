package format_test

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/bibtex"
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/csv"
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/jsonl"
	_ "github.com/lehigh-university-libraries/orcid2vivo/format/ntriples"
)

func sampleGraph() *rdf.Graph {
	g := rdf.NewGraph()
	g.Add("http://vivo.example.edu/individual/doc-1", "http://www.w3.org/2000/01/rdf-schema#label", rdf.Literal("Café, \"quoted\"\nand more"))
	g.Add("http://vivo.example.edu/individual/doc-1", "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", rdf.IRI("http://purl.org/ontology/bibo/Document"))
	g.Add("http://vivo.example.edu/individual/doc-1-url", "http://www.w3.org/2006/vcard/ns#url", rdf.TypedLiteral("http://dx.doi.org/10.1000/x", "http://www.w3.org/2001/XMLSchema#anyURI"))
	return g
}

// TestSerializersWriteEveryTriple checks that each output format writes one
// record per triple, whatever the escaping needs of the values.
func TestSerializersWriteEveryTriple(t *testing.T) {
	triples := sampleGraph().Triples()

	for _, name := range []string{"ntriples", "jsonl", "csv"} {
		t.Run(name, func(t *testing.T) {
			s, err := format.GetSerializer(name)
			if err != nil {
				t.Fatalf("GetSerializer(%q) failed: %v", name, err)
			}

			var buf bytes.Buffer
			if err := s.Serialize(&buf, triples); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}

			var records int
			switch name {
			case "csv":
				rows, err := csv.NewReader(&buf).ReadAll()
				if err != nil {
					t.Fatalf("reading csv: %v", err)
				}
				records = len(rows) - 1
			default:
				scanner := bufio.NewScanner(&buf)
				for scanner.Scan() {
					if strings.TrimSpace(scanner.Text()) != "" {
						records++
					}
				}
			}

			if records != len(triples) {
				t.Errorf("got %d records, want %d", records, len(triples))
			}
		})
	}
}

func TestDetectSerializer(t *testing.T) {
	tests := map[string]string{
		"out.nt":     "ntriples",
		"out.jsonl":  "jsonl",
		"OUT.NDJSON": "jsonl",
		"out.csv":    "csv",
	}
	for file, want := range tests {
		s, err := format.DetectSerializer(file)
		if err != nil {
			t.Errorf("DetectSerializer(%q) failed: %v", file, err)
			continue
		}
		if s.Name() != want {
			t.Errorf("DetectSerializer(%q): got %q, want %q", file, s.Name(), want)
		}
	}

	if _, err := format.DetectSerializer("out.bib"); err == nil {
		t.Error("bibtex is not an output format")
	}
}

func TestCitationMarkerLookup(t *testing.T) {
	p, err := format.GetCitationParser("BIBTEX")
	if err != nil {
		t.Fatalf("GetCitationParser failed: %v", err)
	}
	fields := p.ParseCitation(`@book{k, title = {Stra\ss e}}`)
	if got, _ := fields.Get("title"); got != "Straße" {
		t.Errorf("title: got %q, want %q", got, "Straße")
	}
}
