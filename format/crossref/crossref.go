// Package crossref reads work records from the CrossRef REST API. A record
// is the "message" object of a /works/<doi> response, kept as a loosely
// typed protobuf Struct and read through nil-safe accessors.
package crossref

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultBaseURL is the public CrossRef REST API.
const DefaultBaseURL = "https://api.crossref.org"

// ErrNotFound is returned when CrossRef has no record for a DOI.
var ErrNotFound = errors.New("crossref record not found")

// StatusError reports an unexpected response from the CrossRef service.
type StatusError struct {
	DOI        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("crossref lookup for %s: status %d %s", e.DOI, e.StatusCode, http.StatusText(e.StatusCode))
}
