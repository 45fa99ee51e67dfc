// Package vocab provides the fixed vocabulary of classes, predicates and
// datatypes used in emitted assertions. A Vocabulary is loaded once at start
// up and passed explicitly to the assemblers.
package vocab

import (
	"fmt"
	"strings"
)

// Vocabulary holds every term the crosswalk emits, as absolute IRIs.
type Vocabulary struct {
	// Name identifies the vocabulary (e.g., "vivo-isf")
	Name string `yaml:"name" json:"name"`

	// Individual is the namespace for derived entity identifiers
	Individual string `yaml:"individual" json:"individual"`

	// Namespaces maps CURIE prefixes to namespace IRIs
	Namespaces map[string]string `yaml:"namespaces" json:"namespaces"`

	Classes    Classes    `yaml:"classes" json:"classes"`
	Predicates Predicates `yaml:"predicates" json:"predicates"`
	Precisions Precisions `yaml:"precisions" json:"precisions"`
	Datatypes  Datatypes  `yaml:"datatypes" json:"datatypes"`
}

// Classes are the rdf:type objects.
type Classes struct {
	Person          string `yaml:"person" json:"person"`
	Organization    string `yaml:"organization" json:"organization"`
	Document        string `yaml:"document" json:"document"`
	AcademicArticle string `yaml:"academic_article" json:"academic_article"`
	Book            string `yaml:"book" json:"book"`
	Dataset         string `yaml:"dataset" json:"dataset"`
	Journal         string `yaml:"journal" json:"journal"`
	Authorship      string `yaml:"authorship" json:"authorship"`
	Concept         string `yaml:"concept" json:"concept"`
	DateTimeValue   string `yaml:"date_time_value" json:"date_time_value"`
	VCardIndividual string `yaml:"vcard_individual" json:"vcard_individual"`
	VCardKind       string `yaml:"vcard_kind" json:"vcard_kind"`
	VCardName       string `yaml:"vcard_name" json:"vcard_name"`
	VCardURL        string `yaml:"vcard_url" json:"vcard_url"`
}

// Predicates are the relation and literal properties.
type Predicates struct {
	Type                string `yaml:"type" json:"type"`
	Label               string `yaml:"label" json:"label"`
	Overview            string `yaml:"overview" json:"overview"`
	ScopusID            string `yaml:"scopus_id" json:"scopus_id"`
	ResearcherID        string `yaml:"researcher_id" json:"researcher_id"`
	FreetextKeyword     string `yaml:"freetext_keyword" json:"freetext_keyword"`
	Relates             string `yaml:"relates" json:"relates"`
	DateTimeValue       string `yaml:"date_time_value" json:"date_time_value"`
	DateTime            string `yaml:"date_time" json:"date_time"`
	DateTimePrecision   string `yaml:"date_time_precision" json:"date_time_precision"`
	HasSubjectArea      string `yaml:"has_subject_area" json:"has_subject_area"`
	Publisher           string `yaml:"publisher" json:"publisher"`
	HasPublicationVenue string `yaml:"has_publication_venue" json:"has_publication_venue"`
	DOI                 string `yaml:"doi" json:"doi"`
	Volume              string `yaml:"volume" json:"volume"`
	Issue               string `yaml:"issue" json:"issue"`
	PageStart           string `yaml:"page_start" json:"page_start"`
	PageEnd             string `yaml:"page_end" json:"page_end"`
	HasContactInfo      string `yaml:"has_contact_info" json:"has_contact_info"`
	ContactInfoFor      string `yaml:"contact_info_for" json:"contact_info_for"`
	HasName             string `yaml:"has_name" json:"has_name"`
	HasURL              string `yaml:"has_url" json:"has_url"`
	GivenName           string `yaml:"given_name" json:"given_name"`
	FamilyName          string `yaml:"family_name" json:"family_name"`
	URL                 string `yaml:"url" json:"url"`
}

// Precisions are the date precision individuals.
type Precisions struct {
	Year         string `yaml:"year" json:"year"`
	YearMonth    string `yaml:"year_month" json:"year_month"`
	YearMonthDay string `yaml:"year_month_day" json:"year_month_day"`
}

// Datatypes are literal datatype IRIs.
type Datatypes struct {
	AnyURI   string `yaml:"any_uri" json:"any_uri"`
	DateTime string `yaml:"date_time" json:"date_time"`
}

type term struct {
	name  string
	value *string
}

func (v *Vocabulary) terms() []term {
	c, p, pr, d := &v.Classes, &v.Predicates, &v.Precisions, &v.Datatypes
	return []term{
		{"classes.person", &c.Person},
		{"classes.organization", &c.Organization},
		{"classes.document", &c.Document},
		{"classes.academic_article", &c.AcademicArticle},
		{"classes.book", &c.Book},
		{"classes.dataset", &c.Dataset},
		{"classes.journal", &c.Journal},
		{"classes.authorship", &c.Authorship},
		{"classes.concept", &c.Concept},
		{"classes.date_time_value", &c.DateTimeValue},
		{"classes.vcard_individual", &c.VCardIndividual},
		{"classes.vcard_kind", &c.VCardKind},
		{"classes.vcard_name", &c.VCardName},
		{"classes.vcard_url", &c.VCardURL},
		{"predicates.type", &p.Type},
		{"predicates.label", &p.Label},
		{"predicates.overview", &p.Overview},
		{"predicates.scopus_id", &p.ScopusID},
		{"predicates.researcher_id", &p.ResearcherID},
		{"predicates.freetext_keyword", &p.FreetextKeyword},
		{"predicates.relates", &p.Relates},
		{"predicates.date_time_value", &p.DateTimeValue},
		{"predicates.date_time", &p.DateTime},
		{"predicates.date_time_precision", &p.DateTimePrecision},
		{"predicates.has_subject_area", &p.HasSubjectArea},
		{"predicates.publisher", &p.Publisher},
		{"predicates.has_publication_venue", &p.HasPublicationVenue},
		{"predicates.doi", &p.DOI},
		{"predicates.volume", &p.Volume},
		{"predicates.issue", &p.Issue},
		{"predicates.page_start", &p.PageStart},
		{"predicates.page_end", &p.PageEnd},
		{"predicates.has_contact_info", &p.HasContactInfo},
		{"predicates.contact_info_for", &p.ContactInfoFor},
		{"predicates.has_name", &p.HasName},
		{"predicates.has_url", &p.HasURL},
		{"predicates.given_name", &p.GivenName},
		{"predicates.family_name", &p.FamilyName},
		{"predicates.url", &p.URL},
		{"precisions.year", &pr.Year},
		{"precisions.year_month", &pr.YearMonth},
		{"precisions.year_month_day", &pr.YearMonthDay},
		{"datatypes.any_uri", &d.AnyURI},
		{"datatypes.date_time", &d.DateTime},
	}
}

// Expand resolves a CURIE such as "foaf:Person" against the vocabulary's
// namespaces. Absolute IRIs and unknown prefixes are returned unchanged.
func (v *Vocabulary) Expand(s string) string {
	prefix, local, ok := strings.Cut(s, ":")
	if !ok || strings.HasPrefix(local, "//") {
		return s
	}
	ns, ok := v.Namespaces[prefix]
	if !ok {
		return s
	}
	return ns + local
}

// expandAll rewrites every term in place to its absolute IRI.
func (v *Vocabulary) expandAll() {
	for _, t := range v.terms() {
		*t.value = v.Expand(strings.TrimSpace(*t.value))
	}
}

// Validate checks that every term is set.
func (v *Vocabulary) Validate() error {
	if v.Individual == "" {
		return fmt.Errorf("vocabulary %q: individual namespace is required", v.Name)
	}
	var missing []string
	for _, t := range v.terms() {
		if *t.value == "" {
			missing = append(missing, t.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("vocabulary %q: missing terms: %s", v.Name, strings.Join(missing, ", "))
	}
	return nil
}

// IRI returns the entity IRI for a local identifier in the individual
// namespace.
func (v *Vocabulary) IRI(local string) string {
	return v.Individual + local
}
