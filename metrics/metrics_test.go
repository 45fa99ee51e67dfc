package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCounts(t *testing.T) {
	r := NewRecorder()
	r.WorkProcessed()
	r.WorkProcessed()
	r.TriplesWritten(12)
	r.TriplesWritten(0)
	r.LookupOutcome(OutcomeFound)
	r.LookupOutcome(OutcomeNotFound)
	r.LookupOutcome(OutcomeNotFound)

	if got := testutil.ToFloat64(r.Works); got != 2 {
		t.Errorf("works: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.Triples); got != 12 {
		t.Errorf("triples: got %v, want 12", got)
	}
	if got := testutil.ToFloat64(r.Lookups.WithLabelValues(OutcomeNotFound)); got != 2 {
		t.Errorf("not_found lookups: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.Lookups.WithLabelValues(OutcomeError)); got != 0 {
		t.Errorf("error lookups: got %v, want 0", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	r.WorkProcessed()
	r.TriplesWritten(3)
	r.LookupOutcome(OutcomeCacheHit)
	if r.Registry() != nil {
		t.Error("nil recorder should have no registry")
	}
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "m.prom")); err != nil {
		t.Errorf("WriteTextfile on nil recorder: %v", err)
	}
}

func TestWriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.WorkProcessed()

	path := filepath.Join(t.TempDir(), "orcid2vivo.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading textfile: %v", err)
	}
	if !strings.Contains(string(data), "orcid2vivo_works_total 1") {
		t.Errorf("textfile missing works counter:\n%s", data)
	}
}
