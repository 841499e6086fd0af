package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/internal/ledger"
	"github.com/civicledger/voting-service/internal/validate"
)

// CastVotePayload is the expected cast-vote request
type CastVotePayload struct {
	VoterID      string `json:"voter_id" binding:"required"`
	CandidateID  string `json:"candidate_id" binding:"required"`
	ElectionType string `json:"election_type"`
}

func CastVoteHandler(c *gin.Context) {
	var payload CastVotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vote payload"})
		return
	}

	voterID, err := validate.VoterID(payload.VoterID)
	if err != nil {
		respondError(c, err)
		return
	}
	candidateID, err := validate.CandidateID(payload.CandidateID)
	if err != nil {
		respondError(c, err)
		return
	}
	election, err := validate.ElectionType(payload.ElectionType, true)
	if err != nil {
		respondError(c, err)
		return
	}

	voteID, replayed, err := ledger.CastVote(c.Request.Context(), ledger.CastVoteInput{
		VoterID:        voterID,
		CandidateID:    candidateID,
		ElectionType:   election,
		SourceIP:       c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	message := "Vote recorded successfully"
	if replayed {
		// Same idempotency key, vote already on the ledger.
		status = http.StatusOK
		message = "Vote already recorded"
	}
	c.JSON(status, gin.H{"vote_id": voteID, "message": message})
}

func VoteStatusHandler(c *gin.Context) {
	voterID, err := validate.VoterID(c.Query("voter_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	election, err := validate.ElectionType(c.Query("election_type"), false)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := ledger.GetStatus(c.Request.Context(), voterID, election)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
