package format

import (
	"io"
	"testing"

	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

type stubParser struct{}

func (stubParser) Name() string                { return "stubcite" }
func (stubParser) Description() string         { return "stub citation parser" }
func (stubParser) Extensions() []string        { return nil }
func (stubParser) ParseCitation(string) Fields { return Fields{"title": "T"} }

type stubSerializer struct{}

func (stubSerializer) Name() string                            { return "stubout" }
func (stubSerializer) Description() string                     { return "stub serializer" }
func (stubSerializer) Extensions() []string                    { return []string{"stub"} }
func (stubSerializer) Serialize(io.Writer, []rdf.Triple) error { return nil }

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(stubParser{})

	p, err := r.GetCitationParser("STUBCITE")
	if err != nil {
		t.Fatalf("GetCitationParser failed: %v", err)
	}
	if v, ok := p.ParseCitation("").Get("title"); !ok || v != "T" {
		t.Errorf("ParseCitation: got %q, %v", v, ok)
	}
}

func TestRegistryCapabilityErrors(t *testing.T) {
	r := NewRegistry()
	r.Register(stubParser{})
	r.Register(stubSerializer{})

	if _, err := r.GetSerializer("stubcite"); err == nil {
		t.Error("expected error: citation parser is not a serializer")
	}
	if _, err := r.GetCitationParser("stubout"); err == nil {
		t.Error("expected error: serializer is not a citation parser")
	}
	if _, err := r.GetSerializer("missing"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestDetectSerializer(t *testing.T) {
	r := NewRegistry()
	r.Register(stubParser{})
	r.Register(stubSerializer{})

	s, err := r.DetectSerializer("out/graph.STUB")
	if err != nil {
		t.Fatalf("DetectSerializer failed: %v", err)
	}
	if s.Name() != "stubout" {
		t.Errorf("got %q", s.Name())
	}
	if _, err := r.DetectSerializer("graph.txt"); err == nil {
		t.Error("expected error for unknown extension")
	}
	if got := r.List(); len(got) != 2 || got[0] != "stubcite" {
		t.Errorf("List() = %v", got)
	}
}

func TestFieldsGet(t *testing.T) {
	f := Fields{"title": "X", "volume": ""}
	if _, ok := f.Get("volume"); ok {
		t.Error("empty value should be absent")
	}
	if _, ok := f.Get("pages"); ok {
		t.Error("missing key should be absent")
	}
	var nilFields Fields
	if _, ok := nilFields.Get("title"); ok {
		t.Error("nil mapping should be empty")
	}
}
