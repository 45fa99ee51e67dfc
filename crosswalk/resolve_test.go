package crosswalk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lehigh-university-libraries/orcid2vivo/format"
	"github.com/lehigh-university-libraries/orcid2vivo/hub"
	"github.com/lehigh-university-libraries/orcid2vivo/orcid"
)

func TestResolveWithoutEnrichment(t *testing.T) {
	w := &orcid.Work{
		WorkType:  orcid.WorkTypeBook,
		WorkTitle: &orcid.WorkTitle{Title: &orcid.Value{Value: "Main"}, Subtitle: &orcid.Value{Value: "Sub"}},
		Published: &orcid.PublicationDate{Year: &orcid.Value{Value: "1999"}},
	}

	r := Resolve(w, nil, nil)
	assert.Equal(t, "Main: Sub", r.Title)
	assert.Equal(t, hub.Date{Year: 1999}, r.Date)
	assert.Empty(t, r.DOI)
	assert.Nil(t, r.Subjects)
	assert.Nil(t, r.Authors)
	assert.Empty(t, r.Publisher)
}

func TestResolveCitationFields(t *testing.T) {
	w := &orcid.Work{WorkType: orcid.WorkTypeJournalArticle}
	fields := format.Fields{
		FieldTitle:     "From Citation",
		FieldJournal:   "Nature",
		FieldVolume:    "7",
		FieldNumber:    "",
		FieldPages:     "1-9",
		FieldPublisher: "Springer",
	}

	r := Resolve(w, fields, nil)
	assert.Equal(t, "From Citation", r.Title)
	assert.Equal(t, "Nature", r.Journal)
	assert.Equal(t, "7", r.Volume)
	assert.Empty(t, r.Number)
	assert.Equal(t, "1-9", r.Pages)
	assert.Equal(t, "Springer", r.Publisher)
	assert.True(t, r.Date.IsZero())
}
