package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mitchellh/mapstructure"

	"github.com/civicledger/voting-service/internal/ledger"
	"github.com/civicledger/voting-service/internal/models"
	"github.com/civicledger/voting-service/internal/redis"
	redishandler "github.com/civicledger/voting-service/internal/redisHandler"
	"github.com/civicledger/voting-service/internal/validate"
)

type upsertCandidateInput struct {
	Name  string `json:"name" binding:"required"`
	Party string `json:"party"`
}

func GetCandidateHandler(c *gin.Context) {
	candidateID, err := validate.CandidateID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	data, err := redis.Rdb.HGetAll(c, ledger.CandidateKey(candidateID)).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidate"})
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		return
	}

	candidate := decodeCandidate(data)
	c.JSON(http.StatusOK, gin.H{"data": candidate})
}

func ListCandidatesHandler(c *gin.Context) {
	candidates, err := redishandler.GetAllCandidates(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch candidates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// UpsertCandidateHandler is the registry write path. Admin only; the
// tally counters stay ledger-owned and are never written here.
func UpsertCandidateHandler(c *gin.Context) {
	userID, exists := c.Get("userID")
	role, _ := c.Get("role")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can manage candidates"})
		return
	}

	candidateID, err := validate.CandidateID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	var input upsertCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := ledger.CandidateKey(candidateID)
	fields := map[string]interface{}{
		"id":         candidateID,
		"name":       input.Name,
		"party":      input.Party,
		"updated_by": userID,
	}
	// First write seeds the counters and the registration time.
	existsCmd := redis.Rdb.Exists(c, key)
	if existsCmd.Val() == 0 {
		fields["vote_count"] = 0
		fields["supporter_count"] = 0
		fields["registered_at"] = time.Now().UTC().Format(time.RFC3339)
	}

	if err := redis.Rdb.HSet(c, key, fields).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save candidate"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Candidate saved", "candidate_id": candidateID})
}

func decodeCandidate(data map[string]string) models.Candidate {
	var candidate models.Candidate
	mapstructure.Decode(data, &candidate)
	if n, err := strconv.ParseInt(data["vote_count"], 10, 64); err == nil {
		candidate.VoteCount = n
	}
	if n, err := strconv.ParseInt(data["supporter_count"], 10, 64); err == nil {
		candidate.SupporterCount = n
	}
	if t, err := time.Parse(time.RFC3339, data["registered_at"]); err == nil {
		candidate.RegisteredAt = t
	}
	return candidate
}
