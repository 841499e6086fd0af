package main

import (
	"github.com/gin-gonic/gin"

	"github.com/civicledger/voting-service/config"
	"github.com/civicledger/voting-service/internal/api"
	"github.com/civicledger/voting-service/internal/ledger"
	"github.com/civicledger/voting-service/internal/redis"
)

func main() {
	config.LoadEnv()
	redis.InitRedis()

	ledger.TxMaxRetries = config.GetEnvInt("TX_MAX_RETRIES", 5)

	r := gin.Default()
	api.RegisterRoutes(r)

	port := config.GetEnv("PORT", "8080")
	r.Run(":" + port)
}
