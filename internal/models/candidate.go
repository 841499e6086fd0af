package models

import "time"

// Candidate is owned by the candidate registry. The ledger mutates only
// the two counters, and only inside a vote transaction.
type Candidate struct {
	ID             string    `json:"id" mapstructure:"id"`
	Name           string    `json:"name" mapstructure:"name"`
	Party          string    `json:"party,omitempty" mapstructure:"party"`
	VoteCount      int64     `json:"vote_count" mapstructure:"-"`
	SupporterCount int64     `json:"supporter_count" mapstructure:"-"`
	RegisteredAt   time.Time `json:"registered_at,omitempty" mapstructure:"-"`
}
