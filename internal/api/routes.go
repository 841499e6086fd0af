package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/config"
	"github.com/civicledger/voting-service/internal/controller"
	"github.com/civicledger/voting-service/internal/middleware"
	"github.com/civicledger/voting-service/internal/ratelimit"
)

func RegisterRoutes(r *gin.Engine) {
	r.POST("/login", LoginHandler)

	window := time.Duration(config.GetEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second
	voteLimiter := ratelimit.New(config.GetEnvInt("VOTE_RATE_LIMIT", 5), window)
	statusLimiter := ratelimit.New(config.GetEnvInt("STATUS_RATE_LIMIT", 20), window)

	auth := r.Group("/api")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/votes", middleware.RateLimit(voteLimiter), controller.CastVoteHandler)
		auth.GET("/votes/status", middleware.RateLimit(statusLimiter), controller.VoteStatusHandler)

		auth.GET("/candidates", controller.ListCandidatesHandler)
		auth.GET("/candidates/:id", controller.GetCandidateHandler)
		auth.PUT("/candidates/:id", controller.UpsertCandidateHandler)

		auth.PUT("/voters/:id", controller.UpsertVoterHandler)

		auth.GET("/audit/votes", controller.ListVoteAuditHandler)
	}
}
