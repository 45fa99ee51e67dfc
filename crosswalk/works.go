package crosswalk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/format/crossref"
	"github.com/lehigh-university-libraries/orcid2vivo/hub"
	"github.com/lehigh-university-libraries/orcid2vivo/identifier"
	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// DOIResolver is the base of the canonical URL synthesized for a DOI.
const DOIResolver = "http://dx.doi.org/"

// Owner is the profile owner as seen by the works assembler.
type Owner struct {
	URI    string
	Family string
}

// Works crosswalks every work of p into sink, one at a time. The first
// lookup failure other than not-found stops processing and is returned.
func (c *Crosswalker) Works(ctx context.Context, p *orcid.Profile, personURI string, sink rdf.Sink) error {
	owner := Owner{URI: personURI, Family: p.Name().Family}
	for _, w := range p.Works() {
		if err := c.Work(ctx, w, owner, sink); err != nil {
			return err
		}
	}
	return nil
}

// Work resolves one work and writes its triples.
func (c *Crosswalker) Work(ctx context.Context, w *orcid.Work, owner Owner, sink rdf.Sink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	remote, err := c.enrich(ctx, w)
	if err != nil {
		return err
	}

	c.AssembleWork(Resolve(w, c.citationFields(w), remote), owner, sink)
	c.Metrics.WorkProcessed()
	return nil
}

// enrich returns the remote record for the work's DOI, or nil when the
// work has no DOI or the service has no record.
func (c *Crosswalker) enrich(ctx context.Context, w *orcid.Work) (*crossref.Record, error) {
	doi, ok := w.Identifier(orcid.IdentifierDOI)
	if !ok || c.Lookup == nil {
		return nil, nil
	}

	rec, err := c.Lookup.Lookup(ctx, doi)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, crossref.ErrNotFound):
		slog.Debug("no crossref record, using profile and citation only", "doi", doi)
		return nil, nil
	default:
		return nil, fmt.Errorf("enriching work with doi %s: %w", doi, err)
	}
}

func (c *Crosswalker) citationFields(w *orcid.Work) format.Fields {
	marker, text, ok := w.CitationBlob()
	if !ok {
		return nil
	}
	parser, err := c.citations().GetCitationParser(marker)
	if err != nil {
		slog.Debug("unsupported citation format", "format", marker, "error", err)
		return nil
	}
	return parser.ParseCitation(text)
}

// AssembleWork writes the triples for a resolved work.
func (c *Crosswalker) AssembleWork(r Resolved, owner Owner, sink rdf.Sink) {
	v := c.Vocab
	cl, p := v.Classes, v.Predicates

	workURI := v.IRI(identifier.Derive(identifier.Document, r.Title, r.Type))
	c.typeOf(sink, workURI, cl.Document)
	c.label(sink, workURI, r.Title)

	// owner authorship
	c.authorship(sink, workURI+"-auth", workURI, owner.URI)

	for _, author := range r.Authors {
		if owner.Family != "" && strings.EqualFold(author.Family, owner.Family) {
			continue
		}
		key := identifier.Derive(identifier.Person, author.Given, author.Family)
		personURI := v.IRI(key)
		c.typeOf(sink, personURI, cl.Person)
		c.label(sink, personURI, author.Direct())
		c.authorship(sink, workURI+"-auth-"+key, workURI, personURI)
	}

	c.date(sink, workURI, r.Date)

	for _, subject := range r.Subjects {
		subjectURI := v.IRI(identifier.Derive(identifier.Subject, subject))
		sink.Add(workURI, p.HasSubjectArea, rdf.IRI(subjectURI))
		c.typeOf(sink, subjectURI, cl.Concept)
		c.label(sink, subjectURI, subject)
	}

	if r.DOI != "" {
		sink.Add(workURI, p.DOI, rdf.Literal(r.DOI))

		url := DOIResolver + r.DOI
		vcardURI := v.IRI(identifier.Derive(identifier.VCard, url))
		c.typeOf(sink, vcardURI, cl.VCardKind)
		sink.Add(workURI, p.HasContactInfo, rdf.IRI(vcardURI))
		sink.Add(vcardURI, p.ContactInfoFor, rdf.IRI(workURI))

		urlURI := vcardURI + "-url"
		c.typeOf(sink, urlURI, cl.VCardURL)
		sink.Add(vcardURI, p.HasURL, rdf.IRI(urlURI))
		sink.Add(urlURI, p.URL, rdf.TypedLiteral(url, v.Datatypes.AnyURI))
	}

	if r.Publisher != "" {
		orgURI := v.IRI(identifier.Derive(identifier.Organization, r.Publisher))
		c.typeOf(sink, orgURI, cl.Organization)
		c.label(sink, orgURI, r.Publisher)
		sink.Add(workURI, p.Publisher, rdf.IRI(orgURI))
	}

	if r.Volume != "" {
		sink.Add(workURI, p.Volume, rdf.Literal(r.Volume))
	}
	if r.Number != "" {
		sink.Add(workURI, p.Issue, rdf.Literal(r.Number))
	}
	if start, end, ok := ParsePages(r.Pages); ok {
		sink.Add(workURI, p.PageStart, rdf.Literal(start))
		sink.Add(workURI, p.PageEnd, rdf.Literal(end))
	}

	switch r.Type {
	case orcid.WorkTypeJournalArticle:
		c.typeOf(sink, workURI, cl.AcademicArticle)
		if r.Journal != "" {
			journalURI := v.IRI(identifier.Derive(identifier.Journal, cl.Journal, r.Journal))
			c.typeOf(sink, journalURI, cl.Journal)
			c.label(sink, journalURI, r.Journal)
			sink.Add(workURI, p.HasPublicationVenue, rdf.IRI(journalURI))
		}
	case orcid.WorkTypeBook:
		c.typeOf(sink, workURI, cl.Book)
	case orcid.WorkTypeDataSet:
		c.typeOf(sink, workURI, cl.Dataset)
	default:
		slog.Debug("no specific class for work type", "type", r.Type, "title", r.Title)
	}
}

func (c *Crosswalker) authorship(sink rdf.Sink, authURI, workURI, personURI string) {
	c.typeOf(sink, authURI, c.Vocab.Classes.Authorship)
	sink.Add(authURI, c.Vocab.Predicates.Relates, rdf.IRI(workURI))
	sink.Add(authURI, c.Vocab.Predicates.Relates, rdf.IRI(personURI))
}

// date writes the dependent date entity. Dates without a year are omitted.
func (c *Crosswalker) date(sink rdf.Sink, workURI string, d hub.Date) {
	v := c.Vocab
	var precision string
	switch d.Precision() {
	case hub.PrecisionYear:
		precision = v.Precisions.Year
	case hub.PrecisionMonth:
		precision = v.Precisions.YearMonth
	case hub.PrecisionDay:
		precision = v.Precisions.YearMonthDay
	default:
		return
	}

	dateURI := workURI + "-date"
	sink.Add(workURI, v.Predicates.DateTimeValue, rdf.IRI(dateURI))
	c.typeOf(sink, dateURI, v.Classes.DateTimeValue)
	sink.Add(dateURI, v.Predicates.DateTimePrecision, rdf.IRI(precision))
	sink.Add(dateURI, v.Predicates.DateTime, rdf.TypedLiteral(d.DateTime(), v.Datatypes.DateTime))
	c.label(sink, dateURI, d.Label())
}
