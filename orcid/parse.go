package orcid

import (
	"encoding/json"
	"fmt"
	"io"
)

// Parse reads an ORCID message and returns its profile.
func Parse(r io.Reader) (*Profile, error) {
	var msg Message
	if err := json.NewDecoder(r).Decode(&msg); err != nil {
		return nil, fmt.Errorf("decoding orcid message: %w", err)
	}
	if msg.Profile == nil {
		return nil, fmt.Errorf("orcid message has no orcid-profile")
	}
	return msg.Profile, nil
}
