package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/internal/ledger"
	"github.com/civicledger/voting-service/internal/redis"
	"github.com/civicledger/voting-service/internal/validate"
)

type upsertVoterInput struct {
	Username         string `json:"username"`
	EligibleToVote   *bool  `json:"eligible_to_vote" binding:"required"`
	AccountAgeMonths *int   `json:"account_age_months" binding:"required"`
}

// UpsertVoterHandler is the identity-service write surface used to seed
// and maintain voter profiles. The ledger itself never writes these.
func UpsertVoterHandler(c *gin.Context) {
	_, exists := c.Get("userID")
	role, _ := c.Get("role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can manage voter profiles"})
		return
	}

	voterID, err := validate.VoterID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var input upsertVoterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.AccountAgeMonths < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "account_age_months must not be negative"})
		return
	}

	eligible := "false"
	if *input.EligibleToVote {
		eligible = "true"
	}

	key := ledger.VoterKey(voterID)
	fields := map[string]interface{}{
		"id":                 voterID,
		"username":           input.Username,
		"eligible_to_vote":   eligible,
		"account_age_months": *input.AccountAgeMonths,
	}
	if redis.Rdb.Exists(c, key).Val() == 0 {
		fields["joined_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	if err := redis.Rdb.HSet(c, key, fields).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save voter profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Voter profile saved", "voter_id": voterID})
}
