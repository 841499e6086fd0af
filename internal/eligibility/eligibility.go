// Package eligibility decides whether a voter may cast a ballot. Pure
// predicate over profile data the identity service maintains; it performs
// no reads or writes of its own.
package eligibility

import (
	"github.com/civicledger/voting-service/internal/apperr"
	"github.com/civicledger/voting-service/internal/models"
)

// MinAccountAgeMonths is a ballot-stuffing deterrent tied to social
// account age. A policy knob, not a security boundary: nothing here is
// cryptographically verifiable.
const MinAccountAgeMonths = 6

// IsEligible reports whether the voter may cast a ballot.
func IsEligible(v models.Voter) bool {
	return v.EligibleToVote && v.AccountAgeMonths >= MinAccountAgeMonths
}

// Check returns nil for an eligible voter, or a Forbidden error whose
// message distinguishes "not eligible" from "account too new".
func Check(v models.Voter) error {
	if !v.EligibleToVote {
		return apperr.Forbidden("voter is not eligible to vote")
	}
	if v.AccountAgeMonths < MinAccountAgeMonths {
		return apperr.Forbidden("account too new to vote")
	}
	return nil
}
