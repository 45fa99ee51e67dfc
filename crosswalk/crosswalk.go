// Package crosswalk turns an ORCID profile into VIVO-ISF triples. Work
// fields are merged from three views: the profile itself, the citation
// blob embedded in each work, and the CrossRef record for the work's DOI.
package crosswalk

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/format/crossref"
	"github.com/lehigh-university-libraries/orcid2vivo/metrics"
	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
	"github.com/lehigh-university-libraries/orcid2vivo/vocab"
)

// Lookup fetches remote bibliographic records by DOI. Implementations
// return crossref.ErrNotFound when no record exists; any other error aborts
// the profile.
type Lookup interface {
	Lookup(ctx context.Context, doi string) (*crossref.Record, error)
}

// Crosswalker assembles profile triples. It carries no per-profile state.
type Crosswalker struct {
	Vocab *vocab.Vocabulary

	// Lookup enriches works that carry a DOI. Nil disables enrichment.
	Lookup Lookup

	// Citations resolves citation format markers to parsers. Nil uses
	// format.DefaultRegistry.
	Citations *format.Registry

	Metrics *metrics.Recorder
}

// New creates a Crosswalker for the given vocabulary.
func New(v *vocab.Vocabulary, lookup Lookup) *Crosswalker {
	return &Crosswalker{Vocab: v, Lookup: lookup}
}

// Profile crosswalks the bio and every work of p into sink. The profile is
// assembled in a private graph and handed to sink only when every work
// succeeded, so a failed lookup leaves sink untouched. It returns the
// number of distinct triples written.
func (c *Crosswalker) Profile(ctx context.Context, p *orcid.Profile, personURI string, sink rdf.Sink, opts BioOptions) (int, error) {
	if personURI == "" {
		personURI = c.PersonURI(p)
	}
	if personURI == "" {
		return 0, fmt.Errorf("crosswalking profile: no person URI and no ORCID iD")
	}

	g := rdf.NewGraph()
	c.Bio(p, personURI, g, opts)
	if err := c.Works(ctx, p, personURI, g); err != nil {
		return 0, fmt.Errorf("crosswalking profile %s: %w", p.ORCID(), err)
	}

	for _, t := range g.Triples() {
		sink.Add(t.Subject, t.Predicate, t.Object)
	}
	c.Metrics.TriplesWritten(g.Len())
	return g.Len(), nil
}

// PersonURI returns the default owner IRI: the ORCID iD in the individual
// namespace.
func (c *Crosswalker) PersonURI(p *orcid.Profile) string {
	id := p.ORCID()
	if id == "" {
		return ""
	}
	return c.Vocab.IRI(id)
}

func (c *Crosswalker) typeOf(sink rdf.Sink, subject, class string) {
	sink.Add(subject, c.Vocab.Predicates.Type, rdf.IRI(class))
}

// label skips empty values; an empty label carries no information.
func (c *Crosswalker) label(sink rdf.Sink, subject, value string) {
	if value == "" {
		return
	}
	sink.Add(subject, c.Vocab.Predicates.Label, rdf.Literal(value))
}

func (c *Crosswalker) citations() *format.Registry {
	if c.Citations != nil {
		return c.Citations
	}
	return format.DefaultRegistry
}
