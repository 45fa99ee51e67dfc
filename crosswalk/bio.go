package crosswalk

import (
	"log/slog"
	"strconv"

	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
	"github.com/lehigh-university-libraries/orcid2vivo/rdf"
)

// BioOptions adjust the person and contact entities written by Bio.
type BioOptions struct {
	// SkipPerson omits the person's type and label, for profiles whose
	// person entity already exists.
	SkipPerson bool

	// PersonClass replaces the default person class. CURIEs are expanded
	// against the vocabulary.
	PersonClass string

	// ExistingVCardURI links contact records into an existing vcard
	// instead of creating one.
	ExistingVCardURI string

	// SkipNameVCard omits the name vcard.
	SkipNameVCard bool
}

// Bio writes the owner's person entity, biography, identifiers, keywords
// and vcard contact records.
func (c *Crosswalker) Bio(p *orcid.Profile, personURI string, sink rdf.Sink, opts BioOptions) {
	v := c.Vocab
	cl, pr := v.Classes, v.Predicates
	name := p.Name()

	if !opts.SkipPerson {
		class := cl.Person
		if opts.PersonClass != "" {
			class = v.Expand(opts.PersonClass)
		}
		c.typeOf(sink, personURI, class)
		c.label(sink, personURI, name.Direct())
	}

	if bio := p.Biography(); bio != "" {
		sink.Add(personURI, pr.Overview, rdf.Literal(bio))
	}

	for _, id := range p.ExternalIdentifiers() {
		switch id.Type {
		case orcid.IdentifierScopusAuthorID:
			sink.Add(personURI, pr.ScopusID, rdf.Literal(id.Value))
		case orcid.IdentifierResearcherID:
			sink.Add(personURI, pr.ResearcherID, rdf.Literal(id.Value))
		default:
			slog.Debug("skipping unsupported external identifier", "type", id.Type)
		}
	}

	for _, kw := range p.Keywords() {
		sink.Add(personURI, pr.FreetextKeyword, rdf.Literal(kw))
	}

	vcardURI := personURI + "-vcard"
	if opts.ExistingVCardURI != "" {
		vcardURI = opts.ExistingVCardURI
	}
	hasChild := false

	if !opts.SkipNameVCard && !name.IsZero() {
		nameURI := personURI + "-vcard-name"
		c.typeOf(sink, nameURI, cl.VCardName)
		sink.Add(vcardURI, pr.HasName, rdf.IRI(nameURI))
		if name.Given != "" {
			sink.Add(nameURI, pr.GivenName, rdf.Literal(name.Given))
		}
		if name.Family != "" {
			sink.Add(nameURI, pr.FamilyName, rdf.Literal(name.Family))
		}
		hasChild = true
	}

	for i, site := range p.Websites() {
		siteURI := personURI + "-vcard-website" + strconv.Itoa(i)
		c.typeOf(sink, siteURI, cl.VCardURL)
		sink.Add(vcardURI, pr.HasURL, rdf.IRI(siteURI))
		sink.Add(siteURI, pr.URL, rdf.TypedLiteral(site.URL, v.Datatypes.AnyURI))
		c.label(sink, siteURI, site.Label)
		hasChild = true
	}

	if hasChild && opts.ExistingVCardURI == "" {
		c.typeOf(sink, vcardURI, cl.VCardIndividual)
		sink.Add(personURI, pr.HasContactInfo, rdf.IRI(vcardURI))
		sink.Add(vcardURI, pr.ContactInfoFor, rdf.IRI(personURI))
	}
}
