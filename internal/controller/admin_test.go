package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicledger/voting-service/internal/ledger"
	"github.com/civicledger/voting-service/internal/models"
	"github.com/civicledger/voting-service/internal/redis"
)

// asUser stands in for the JWT middleware in tests.
func asUser(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

func setupAdminRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	redis.Rdb = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redis.Rdb.Close() })

	r := gin.New()
	r.Use(asUser("10", role))
	r.PUT("/api/voters/:id", UpsertVoterHandler)
	r.PUT("/api/candidates/:id", UpsertCandidateHandler)
	r.GET("/api/candidates", ListCandidatesHandler)
	r.GET("/api/audit/votes", ListVoteAuditHandler)
	r.POST("/api/votes", CastVoteHandler)
	return r
}

func putJSON(r *gin.Engine, url string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpsertVoterAndCandidate(t *testing.T) {
	r := setupAdminRouter(t, "admin")

	eligible := true
	age := 8
	w := putJSON(r, "/api/voters/v1", map[string]interface{}{
		"username":           "ada",
		"eligible_to_vote":   eligible,
		"account_age_months": age,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = putJSON(r, "/api/candidates/c1", map[string]interface{}{
		"name":  "Candidate One",
		"party": "Greens",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The seeded profiles are enough for a full cast.
	payload, _ := json.Marshal(map[string]string{
		"voter_id":      "v1",
		"candidate_id":  "c1",
		"election_type": "general",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/votes", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	vw := httptest.NewRecorder()
	r.ServeHTTP(vw, req)
	require.Equal(t, http.StatusCreated, vw.Code)

	// Registry upsert must not clobber ledger-owned counters.
	w = putJSON(r, "/api/candidates/c1", map[string]interface{}{
		"name": "Candidate One Renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)
	count, err := redis.Rdb.HGet(context.Background(), ledger.CandidateKey("c1"), "vote_count").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Audit trail shows the cast.
	aw := httptest.NewRecorder()
	r.ServeHTTP(aw, httptest.NewRequest(http.MethodGet, "/api/audit/votes?limit=10", nil))
	require.Equal(t, http.StatusOK, aw.Code)
	var audit struct {
		Entries []models.AuditEntry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(aw.Body.Bytes(), &audit))
	require.Len(t, audit.Entries, 1)
	assert.Equal(t, "v1", audit.Entries[0].VoterID)

	// Candidate listing includes the tally.
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, httptest.NewRequest(http.MethodGet, "/api/candidates", nil))
	require.Equal(t, http.StatusOK, lw.Code)
	assert.Contains(t, lw.Body.String(), `"vote_count":1`)
}

func TestUpsertRequestsDoNotLeakFields(t *testing.T) {
	r := setupAdminRouter(t, "admin")
	ctx := context.Background()

	w := putJSON(r, "/api/candidates/c1", map[string]interface{}{
		"name":  "Candidate One",
		"party": "Greens",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// A later request that omits party must not inherit c1's value.
	w = putJSON(r, "/api/candidates/c2", map[string]interface{}{
		"name": "Candidate Two",
	})
	require.Equal(t, http.StatusOK, w.Code)

	party, err := redis.Rdb.HGet(ctx, ledger.CandidateKey("c2"), "party").Result()
	require.NoError(t, err)
	assert.Empty(t, party)

	// Same for voter profiles: username must not carry over.
	w = putJSON(r, "/api/voters/v1", map[string]interface{}{
		"username":           "ada",
		"eligible_to_vote":   true,
		"account_age_months": 8,
	})
	require.Equal(t, http.StatusOK, w.Code)
	w = putJSON(r, "/api/voters/v2", map[string]interface{}{
		"eligible_to_vote":   true,
		"account_age_months": 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	username, err := redis.Rdb.HGet(ctx, ledger.VoterKey("v2"), "username").Result()
	require.NoError(t, err)
	assert.Empty(t, username)
}

func TestAdminSurfacesRejectNonAdmins(t *testing.T) {
	r := setupAdminRouter(t, "citizen")

	w := putJSON(r, "/api/voters/v1", map[string]interface{}{
		"eligible_to_vote":   true,
		"account_age_months": 8,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = putJSON(r, "/api/candidates/c1", map[string]interface{}{"name": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	aw := httptest.NewRecorder()
	r.ServeHTTP(aw, httptest.NewRequest(http.MethodGet, "/api/audit/votes", nil))
	assert.Equal(t, http.StatusForbidden, aw.Code)
}
