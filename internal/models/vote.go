package models

import "time"

// ElectionType is a closed enumeration scoping vote uniqueness:
// one vote per (voter, election type).
type ElectionType string

const (
	ElectionGeneral ElectionType = "general"
	ElectionPrimary ElectionType = "primary"
	ElectionSpecial ElectionType = "special"
)

// ElectionTypes lists every valid election type.
var ElectionTypes = []ElectionType{ElectionGeneral, ElectionPrimary, ElectionSpecial}

// Vote is immutable once written: created exactly once per
// (voter, election type), never updated or deleted.
type Vote struct {
	VoteID         string       `json:"vote_id" mapstructure:"vote_id"`
	VoterID        string       `json:"voter_id" mapstructure:"voter_id"`
	CandidateID    string       `json:"candidate_id" mapstructure:"candidate_id"`
	ElectionType   ElectionType `json:"election_type" mapstructure:"election_type"`
	CastAt         time.Time    `json:"cast_at" mapstructure:"-"`
	SourceIP       string       `json:"-" mapstructure:"source_ip"`
	UserAgent      string       `json:"-" mapstructure:"user_agent"`
	IdempotencyKey string       `json:"-" mapstructure:"idempotency_key"`
}

// VoteStatus is the read-side answer to "has this voter already voted?".
type VoteStatus struct {
	HasVoted bool       `json:"has_voted"`
	VotedFor string     `json:"voted_for,omitempty"`
	VotedAt  *time.Time `json:"voted_at,omitempty"`
}

// AuditEntry mirrors each successful cast into the append-only audit log.
// The voting path never reads it back.
type AuditEntry struct {
	Type         string       `json:"type"`
	VoterID      string       `json:"voter_id"`
	CandidateID  string       `json:"candidate_id"`
	ElectionType ElectionType `json:"election_type"`
	CastAt       time.Time    `json:"cast_at"`
	SourceIP     string       `json:"source_ip"`
}

// AuditVoteCast is the only audit entry type the ledger emits today.
const AuditVoteCast = "vote_cast"
