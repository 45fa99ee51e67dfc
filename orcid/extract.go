package orcid

import (
	"strings"

	"github.com/lehigh-university-libraries/orcid2vivo/helpers"
	"github.com/lehigh-university-libraries/orcid2vivo/hub"
)

// Website is a researcher URL with an optional label.
type Website struct {
	URL   string
	Label string
}

// TypedIdentifier is an external identifier type tag and value.
type TypedIdentifier struct {
	Type  string
	Value string
}

func (v *Value) get() string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v.Value)
}

// ORCID returns the ORCID iD path (e.g. "0000-0001-2345-6789").
func (p *Profile) ORCID() string {
	if p == nil || p.Identifier == nil {
		return ""
	}
	return p.Identifier.Path
}

func (p *Profile) bio() *Bio {
	if p == nil || p.Bio == nil {
		return &Bio{}
	}
	return p.Bio
}

// Name returns the person's given and family names.
func (p *Profile) Name() hub.Name {
	pd := p.bio().PersonalDetails
	if pd == nil {
		return hub.Name{}
	}
	return hub.Name{Given: pd.GivenNames.get(), Family: pd.FamilyName.get()}
}

// Biography returns the free-text biography.
func (p *Profile) Biography() string {
	return p.bio().Biography.get()
}

// ExternalIdentifiers returns the person's identifiers in other systems.
// Entries without a type tag or value are skipped.
func (p *Profile) ExternalIdentifiers() []TypedIdentifier {
	ids := p.bio().ExternalIdentifiers
	if ids == nil {
		return nil
	}
	var result []TypedIdentifier
	for _, id := range ids.ExternalIdentifier {
		t, v := id.CommonName.get(), id.Reference.get()
		if t == "" || v == "" {
			continue
		}
		result = append(result, TypedIdentifier{Type: t, Value: v})
	}
	return result
}

// Keywords returns the free-text keywords.
func (p *Profile) Keywords() []string {
	kw := p.bio().Keywords
	if kw == nil {
		return nil
	}
	var result []string
	for _, k := range kw.Keyword {
		if v := k.get(); v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Websites returns the researcher URLs in profile order.
func (p *Profile) Websites() []Website {
	urls := p.bio().ResearcherURLs
	if urls == nil {
		return nil
	}
	var result []Website
	for _, u := range urls.ResearcherURL {
		if u.URL.get() == "" {
			continue
		}
		result = append(result, Website{URL: u.URL.get(), Label: u.URLName.get()})
	}
	return result
}

// Works returns the publication records.
func (p *Profile) Works() []*Work {
	if p == nil || p.Activities == nil || p.Activities.Works == nil {
		return nil
	}
	var result []*Work
	for _, w := range p.Activities.Works.Work {
		if w != nil {
			result = append(result, w)
		}
	}
	return result
}

// Type returns the work-type tag (e.g. "JOURNAL_ARTICLE").
func (w *Work) Type() string {
	return w.WorkType
}

// CitationBlob returns the embedded citation and its format marker.
func (w *Work) CitationBlob() (marker, text string, ok bool) {
	if w.Citation == nil || strings.TrimSpace(w.Citation.Citation) == "" {
		return "", "", false
	}
	return w.Citation.Type, w.Citation.Citation, true
}

// Identifiers returns the work's external identifiers keyed by type tag.
// When a type repeats, the last value wins.
func (w *Work) Identifiers() map[string]string {
	ids := make(map[string]string)
	if w.ExternalIdentifiers == nil {
		return ids
	}
	for _, id := range w.ExternalIdentifiers.WorkExternalIdentifier {
		if v := id.ID.get(); id.Type != "" && v != "" {
			ids[id.Type] = v
		}
	}
	return ids
}

// Identifier returns the external identifier with the given type tag.
func (w *Work) Identifier(idType string) (string, bool) {
	v, ok := w.Identifiers()[idType]
	return v, ok
}

// Title returns the title joined with the subtitle as "Title: Subtitle".
func (w *Work) Title() string {
	if w.WorkTitle == nil {
		return ""
	}
	return helpers.JoinNonEmpty(": ", w.WorkTitle.Title.get(), w.WorkTitle.Subtitle.get())
}

// PublicationDate returns the partial publication date.
func (w *Work) PublicationDate() hub.Date {
	pd := w.Published
	if pd == nil {
		return hub.Date{}
	}
	return hub.ParseDate(pd.Year.get(), pd.Month.get(), pd.Day.get())
}
