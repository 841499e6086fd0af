// Package ledger is the transactional core of the voting service. A cast
// runs as one atomic unit: prior-vote check, voter eligibility, candidate
// tally increments and the audit append all commit together or not at all.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	goredis "github.com/redis/go-redis/v9"

	"github.com/civicledger/voting-service/internal/apperr"
	"github.com/civicledger/voting-service/internal/eligibility"
	"github.com/civicledger/voting-service/internal/models"
	"github.com/civicledger/voting-service/internal/redis"
)

// TxMaxRetries bounds how many times the transaction runner re-executes
// the cast block after losing an optimistic-concurrency race.
var TxMaxRetries = 5

// Storage calls fail closed on timeout: no response means no vote recorded.
const (
	castTimeout   = 5 * time.Second
	statusTimeout = 3 * time.Second
)

// CastVoteInput carries everything a cast needs. SourceIP and UserAgent
// go into the vote record and audit trail for later investigation.
type CastVoteInput struct {
	VoterID        string
	CandidateID    string
	ElectionType   models.ElectionType
	SourceIP       string
	UserAgent      string
	IdempotencyKey string
}

// CastVote records a vote exactly once per (voter, election type).
//
// The whole read-check-write block runs under WATCH on the voter, vote
// and candidate keys, so the duplicate check and the eligibility check
// are re-evaluated on every retry. Replayed reports that the vote was
// already recorded under the same idempotency key, in which case the
// existing vote id is returned instead of a conflict.
func CastVote(ctx context.Context, in CastVoteInput) (voteID string, replayed bool, err error) {
	ctx, cancel := context.WithTimeout(ctx, castTimeout)
	defer cancel()

	voterK := VoterKey(in.VoterID)
	candK := CandidateKey(in.CandidateID)
	voteK := VoteKey(in.ElectionType, in.VoterID)

	txf := func(tx *goredis.Tx) error {
		voterData, err := tx.HGetAll(ctx, voterK).Result()
		if err != nil {
			return err
		}
		if len(voterData) == 0 {
			return apperr.NotFound("voter " + in.VoterID + " not found")
		}
		voter, err := decodeVoter(voterData)
		if err != nil {
			return err
		}
		if err := eligibility.Check(voter); err != nil {
			return err
		}

		existing, err := tx.HGetAll(ctx, voteK).Result()
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			if in.IdempotencyKey != "" && existing["idempotency_key"] == in.IdempotencyKey {
				voteID = existing["vote_id"]
				replayed = true
				return nil
			}
			return apperr.Conflict("already voted in the " + string(in.ElectionType) + " election")
		}

		candData, err := tx.HGetAll(ctx, candK).Result()
		if err != nil {
			return err
		}
		if len(candData) == 0 {
			return apperr.NotFound("candidate " + in.CandidateID + " not found")
		}

		voteID = uuid.New().String()
		castAt := time.Now().UTC()

		entry := models.AuditEntry{
			Type:         models.AuditVoteCast,
			VoterID:      in.VoterID,
			CandidateID:  in.CandidateID,
			ElectionType: in.ElectionType,
			CastAt:       castAt,
			SourceIP:     in.SourceIP,
		}
		payload, err := json.Marshal(entry)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, voteK, map[string]interface{}{
				"vote_id":         voteID,
				"voter_id":        in.VoterID,
				"candidate_id":    in.CandidateID,
				"election_type":   string(in.ElectionType),
				"cast_at":         castAt.Format(time.RFC3339),
				"source_ip":       in.SourceIP,
				"user_agent":      in.UserAgent,
				"idempotency_key": in.IdempotencyKey,
			})
			pipe.HIncrBy(ctx, candK, "vote_count", 1)
			pipe.HIncrBy(ctx, candK, "supporter_count", 1)
			pipe.RPush(ctx, AuditKey, payload)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < TxMaxRetries; attempt++ {
		err := redis.Rdb.Watch(ctx, txf, voterK, voteK, candK)
		switch {
		case err == nil:
			return voteID, replayed, nil
		case errors.Is(err, goredis.TxFailedErr):
			// Lost the race; re-run the whole block.
			continue
		case apperr.KindOf(err) != apperr.KindUnknown:
			return "", false, err
		default:
			return "", false, apperr.Unavailable(err)
		}
	}
	return "", false, apperr.Unavailable(errors.New("vote transaction kept conflicting"))
}

// GetStatus reports whether and how the voter has already voted. A
// single point read, so no transaction is taken.
func GetStatus(ctx context.Context, voterID string, election models.ElectionType) (models.VoteStatus, error) {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	data, err := redis.Rdb.HGetAll(ctx, VoteKey(election, voterID)).Result()
	if err != nil {
		return models.VoteStatus{}, apperr.Unavailable(err)
	}
	if len(data) == 0 {
		return models.VoteStatus{}, nil
	}

	status := models.VoteStatus{
		HasVoted: true,
		VotedFor: data["candidate_id"],
	}
	if t, err := time.Parse(time.RFC3339, data["cast_at"]); err == nil {
		status.VotedAt = &t
	}
	return status, nil
}

func decodeVoter(data map[string]string) (models.Voter, error) {
	var voter models.Voter
	if err := mapstructure.Decode(data, &voter); err != nil {
		return models.Voter{}, apperr.Unavailable(err)
	}
	if months, err := strconv.Atoi(data["account_age_months"]); err == nil {
		voter.AccountAgeMonths = months
	}
	voter.EligibleToVote = data["eligible_to_vote"] == "true" || data["eligible_to_vote"] == "1"
	if t, err := time.Parse(time.RFC3339, data["joined_at"]); err == nil {
		voter.JoinedAt = t
	}
	return voter, nil
}
