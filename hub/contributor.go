package hub

import "github.com/lehigh-university-libraries/orcid2vivo/helpers"

// Name is a person name split into given and family parts, either of which
// may be empty.
type Name struct {
	Given  string
	Family string
}

// IsZero reports whether both parts are empty.
func (n Name) IsZero() bool {
	return n.Given == "" && n.Family == ""
}

// Direct returns the name in "Given Family" order, skipping empty parts.
func (n Name) Direct() string {
	return helpers.JoinNonEmpty(" ", n.Given, n.Family)
}
