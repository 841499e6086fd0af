package models

import "time"

// Voter is owned and mutated by the external identity/profile service;
// the ledger only ever reads it.
type Voter struct {
	ID               string    `json:"id" mapstructure:"id"`
	Username         string    `json:"username,omitempty" mapstructure:"username"`
	EligibleToVote   bool      `json:"eligible_to_vote" mapstructure:"-"`
	AccountAgeMonths int       `json:"account_age_months" mapstructure:"-"`
	JoinedAt         time.Time `json:"joined_at,omitempty" mapstructure:"-"`
}
