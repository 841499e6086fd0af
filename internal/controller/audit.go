package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/internal/ledger"
	"github.com/civicledger/voting-service/internal/models"
	"github.com/civicledger/voting-service/internal/redis"
)

// ListVoteAuditHandler returns the most recent audit entries, newest
// last. Compliance read only; the voting path never calls this.
func ListVoteAuditHandler(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can read the audit trail"})
		return
	}

	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > 1000 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 1000"})
			return
		}
		limit = n
	}

	raw, err := redis.Rdb.LRange(c, ledger.AuditKey, -limit, -1).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch audit trail"})
		return
	}

	entries := make([]models.AuditEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.AuditEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
