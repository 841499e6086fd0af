package ledger

import "github.com/civicledger/voting-service/internal/models"

// Key layout:
//
//	voter:{id}                     identity service profile (read-only here)
//	candidate:{id}                 registry document + tally counters
//	vote:{electionType}:{voterId}  one hash per cast ballot
//	audit:votes                    append-only list of JSON audit entries
const AuditKey = "audit:votes"

func VoterKey(voterID string) string {
	return "voter:" + voterID
}

func CandidateKey(candidateID string) string {
	return "candidate:" + candidateID
}

func VoteKey(election models.ElectionType, voterID string) string {
	return "vote:" + string(election) + ":" + voterID
}
