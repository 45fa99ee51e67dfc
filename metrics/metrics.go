// Package metrics counts crosswalk activity on a private Prometheus registry.
// The counters are written out as a node-exporter textfile at the end of a
// run.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeCacheHit = "cache_hit"
)

// Recorder holds the crosswalk counters. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	registry *prometheus.Registry

	Works   prometheus.Counter
	Triples prometheus.Counter
	Lookups *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all counters registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Works: factory.NewCounter(prometheus.CounterOpts{
			Name: "orcid2vivo_works_total",
			Help: "Total number of profile works crosswalked",
		}),
		Triples: factory.NewCounter(prometheus.CounterOpts{
			Name: "orcid2vivo_triples_total",
			Help: "Total number of triples written to sinks",
		}),
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "orcid2vivo_lookups_total",
			Help: "Remote bibliographic lookups by outcome",
		}, []string{"outcome"}),
	}
}

// WorkProcessed records one assembled work.
func (r *Recorder) WorkProcessed() {
	if r == nil {
		return
	}
	r.Works.Inc()
}

// TriplesWritten records n triples handed to a sink.
func (r *Recorder) TriplesWritten(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.Triples.Add(float64(n))
}

// LookupOutcome records the result of one remote lookup.
func (r *Recorder) LookupOutcome(outcome string) {
	if r == nil {
		return
	}
	r.Lookups.WithLabelValues(outcome).Inc()
}

// Registry returns the registry the counters live on.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// WriteTextfile writes the current counter values to path in the text
// exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
