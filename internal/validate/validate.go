// Package validate normalizes and rejects raw request identifiers before
// anything touches storage. Pure functions over strings, no side effects.
package validate

import (
	"strings"

	"github.com/civicledger/voting-service/internal/apperr"
	"github.com/civicledger/voting-service/internal/models"
)

// MaxIDLength bounds voter and candidate ids; the identity provider's
// opaque ids are well under this.
const MaxIDLength = 64

// VoterID trims and checks a raw voter id against the opaque-id shape.
func VoterID(raw string) (string, error) {
	return id("voter_id", raw)
}

// CandidateID trims and checks a raw candidate id.
func CandidateID(raw string) (string, error) {
	return id("candidate_id", raw)
}

func id(field, raw string) (string, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", apperr.Validation(field, "must not be empty")
	}
	if len(v) > MaxIDLength {
		return "", apperr.Validation(field, "must be at most 64 characters")
	}
	for _, r := range v {
		if !idRune(r) {
			return "", apperr.Validation(field, "contains invalid characters")
		}
	}
	return v, nil
}

func idRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// ElectionType parses the election-type enum. Write paths must supply it;
// read paths fall back to the general election when it is omitted.
func ElectionType(raw string, required bool) (models.ElectionType, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		if required {
			return "", apperr.Validation("election_type", "must not be empty")
		}
		return models.ElectionGeneral, nil
	}
	for _, et := range models.ElectionTypes {
		if models.ElectionType(v) == et {
			return et, nil
		}
	}
	return "", apperr.Validation("election_type", "must be one of general, primary, special")
}
