package crosswalk

import (
	"log/slog"
	"regexp"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/format/crossref"
	"github.com/lehigh-university-libraries/orcid2vivo/hub"
	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
)

// Citation field keys.
const (
	FieldTitle     = "title"
	FieldPublisher = "publisher"
	FieldJournal   = "journal"
	FieldVolume    = "volume"
	FieldNumber    = "number"
	FieldPages     = "pages"
)

// Resolved is one work with every logical field merged from its views.
// Empty values mean no view supplied the field.
type Resolved struct {
	Type     string
	Title    string
	Date     hub.Date
	DOI      string
	Subjects []string
	Authors  []hub.Name

	Publisher string
	Journal   string
	Volume    string
	Number    string
	Pages     string
}

// source is one view's accessor for a logical field.
type source[T any] struct {
	name string
	get  func() (T, bool)
}

// first returns the value of the first source that has one.
func first[T any](field string, sources ...source[T]) T {
	for _, s := range sources {
		if v, ok := s.get(); ok {
			slog.Debug("resolved field", "field", field, "source", s.name)
			return v
		}
	}
	var zero T
	return zero
}

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func knownDate(d hub.Date) (hub.Date, bool) {
	return d, !d.IsZero()
}

// Resolve merges the views of one work. Title and date fall back across
// views; subjects and authors come only from the remote record; publisher,
// venue and pagination come only from the citation. Either of citation and
// remote may be nil.
func Resolve(w *orcid.Work, citation format.Fields, remote *crossref.Record) Resolved {
	doi, _ := w.Identifier(orcid.IdentifierDOI)

	r := Resolved{
		Type: w.Type(),
		DOI:  doi,
		Title: first("title",
			source[string]{"crossref", func() (string, bool) { return nonEmpty(remote.Title()) }},
			source[string]{"citation", func() (string, bool) { return citation.Get(FieldTitle) }},
			source[string]{"orcid", func() (string, bool) { return nonEmpty(w.Title()) }},
		),
		Date: first("date",
			source[hub.Date]{"crossref", func() (hub.Date, bool) { return knownDate(remote.Issued()) }},
			source[hub.Date]{"orcid", func() (hub.Date, bool) { return knownDate(w.PublicationDate()) }},
		),
		Subjects: remote.Subjects(),
		Authors:  remote.Authors(),
	}

	for key, dst := range map[string]*string{
		FieldPublisher: &r.Publisher,
		FieldJournal:   &r.Journal,
		FieldVolume:    &r.Volume,
		FieldNumber:    &r.Number,
		FieldPages:     &r.Pages,
	} {
		*dst, _ = citation.Get(key)
	}
	return r
}

var pageRangeRegex = regexp.MustCompile(`^\s*([^\s\-–—]+)\s*[\-–—]+\s*([^\s\-–—]+)\s*$`)

// ParsePages splits a page range such as "123-145" or "12 – 20". A single
// page or anything else unparseable reports false.
func ParsePages(pages string) (start, end string, ok bool) {
	m := pageRangeRegex.FindStringSubmatch(pages)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
