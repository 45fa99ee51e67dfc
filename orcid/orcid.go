// Package orcid models the ORCID profile message consumed by the crosswalk
// and exposes a read-only view over it. Every level of the message may be
// null or absent; accessors return zero values instead of failing.
package orcid

// Message is the top-level ORCID document.
type Message struct {
	Profile *Profile `json:"orcid-profile"`
}

// Profile is the root input record for one person.
type Profile struct {
	Identifier *Identifier `json:"orcid-identifier"`
	Bio        *Bio        `json:"orcid-bio"`
	Activities *Activities `json:"orcid-activities"`
}

// Identifier carries the ORCID iD.
type Identifier struct {
	URI  string `json:"uri"`
	Path string `json:"path"`
	Host string `json:"host"`
}

// Value wraps the {"value": ...} objects used throughout the message.
type Value struct {
	Value string `json:"value"`
}

// Bio is the biographical part of a profile.
type Bio struct {
	PersonalDetails     *PersonalDetails     `json:"personal-details"`
	Biography           *Value               `json:"biography"`
	ExternalIdentifiers *ExternalIdentifiers `json:"external-identifiers"`
	Keywords            *Keywords            `json:"keywords"`
	ResearcherURLs      *ResearcherURLs      `json:"researcher-urls"`
}

// PersonalDetails holds the person's names.
type PersonalDetails struct {
	GivenNames *Value `json:"given-names"`
	FamilyName *Value `json:"family-name"`
}

// ExternalIdentifiers lists identifiers held in other systems.
type ExternalIdentifiers struct {
	ExternalIdentifier []ExternalIdentifier `json:"external-identifier"`
}

// ExternalIdentifier is a (type tag, value) pair such as ("ResearcherID", "A-1234-2010").
type ExternalIdentifier struct {
	CommonName *Value `json:"external-id-common-name"`
	Reference  *Value `json:"external-id-reference"`
	URL        *Value `json:"external-id-url"`
}

// Keywords lists free-text keywords.
type Keywords struct {
	Keyword []Value `json:"keyword"`
}

// ResearcherURLs lists the person's websites.
type ResearcherURLs struct {
	ResearcherURL []ResearcherURL `json:"researcher-url"`
}

// ResearcherURL is a website with an optional display label.
type ResearcherURL struct {
	URL     *Value `json:"url"`
	URLName *Value `json:"url-name"`
}

// Activities holds the publication list.
type Activities struct {
	Works *Works `json:"orcid-works"`
}

// Works wraps the work array.
type Works struct {
	Work []*Work `json:"orcid-work"`
}

// Work is one publication record.
type Work struct {
	WorkType            string           `json:"work-type"`
	Citation            *Citation        `json:"work-citation"`
	ExternalIdentifiers *WorkExternalIDs `json:"work-external-identifiers"`
	WorkTitle           *WorkTitle       `json:"work-title"`
	Published           *PublicationDate `json:"publication-date"`
}

// Citation is an embedded citation blob tagged with its format (e.g. "BIBTEX").
type Citation struct {
	Type     string `json:"work-citation-type"`
	Citation string `json:"citation"`
}

// WorkExternalIDs wraps the work identifier array.
type WorkExternalIDs struct {
	WorkExternalIdentifier []WorkExternalIdentifier `json:"work-external-identifier"`
}

// WorkExternalIdentifier is a (type tag, value) pair such as ("DOI", "10.1234/x").
type WorkExternalIdentifier struct {
	Type string `json:"work-external-identifier-type"`
	ID   *Value `json:"work-external-identifier-id"`
}

// WorkTitle holds the main title and optional subtitle.
type WorkTitle struct {
	Title    *Value `json:"title"`
	Subtitle *Value `json:"subtitle"`
}

// PublicationDate holds independently optional date components.
type PublicationDate struct {
	Year  *Value `json:"year"`
	Month *Value `json:"month"`
	Day   *Value `json:"day"`
}

// Work types with a dedicated mapping.
const (
	WorkTypeJournalArticle = "JOURNAL_ARTICLE"
	WorkTypeBook           = "BOOK"
	WorkTypeDataSet        = "DATA_SET"
)

// External identifier type tags.
const (
	IdentifierScopusAuthorID = "Scopus Author ID"
	IdentifierResearcherID   = "ResearcherID"
	IdentifierDOI            = "DOI"
)
