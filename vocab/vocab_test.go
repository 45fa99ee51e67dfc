package vocab

import (
	"strings"
	"testing"
)

func TestDefaultExpandsCURIEs(t *testing.T) {
	v, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"person", v.Classes.Person, "http://xmlns.com/foaf/0.1/Person"},
		{"type", v.Predicates.Type, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"},
		{"has contact info", v.Predicates.HasContactInfo, "http://purl.obolibrary.org/obo/ARG_2000028"},
		{"journal", v.Classes.Journal, "http://purl.org/ontology/bibo/Journal"},
		{"anyURI", v.Datatypes.AnyURI, "http://www.w3.org/2001/XMLSchema#anyURI"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadFromStringOverridesDefaults(t *testing.T) {
	v, err := LoadFromString(`
individual: https://scholars.example.edu/individual/
classes:
  person: vivo:FacultyMember
`)
	if err != nil {
		t.Fatalf("LoadFromString() failed: %v", err)
	}
	if v.Individual != "https://scholars.example.edu/individual/" {
		t.Errorf("Individual: got %q", v.Individual)
	}
	if v.Classes.Person != "http://vivoweb.org/ontology/core#FacultyMember" {
		t.Errorf("Person: got %q", v.Classes.Person)
	}
	if v.Classes.Book != "http://purl.org/ontology/bibo/Book" {
		t.Errorf("Book should keep default, got %q", v.Classes.Book)
	}
	if got := v.IRI("doc-1"); got != "https://scholars.example.edu/individual/doc-1" {
		t.Errorf("IRI(): got %q", got)
	}
}

func TestValidateReportsMissingTerms(t *testing.T) {
	v, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	v.Predicates.DOI = ""
	err = v.Validate()
	if err == nil || !strings.Contains(err.Error(), "predicates.doi") {
		t.Fatalf("Validate() = %v, want error naming predicates.doi", err)
	}
}

func TestExpandLeavesAbsoluteIRIs(t *testing.T) {
	v, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Expand("http://example.org/x"); got != "http://example.org/x" {
		t.Errorf("Expand() = %q", got)
	}
	if got := v.Expand("unknown:x"); got != "unknown:x" {
		t.Errorf("Expand() = %q", got)
	}
}
