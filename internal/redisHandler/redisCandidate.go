package redishandler

import (
	"context"
	"strconv"

	"github.com/mitchellh/mapstructure"

	"github.com/civicledger/voting-service/internal/models"
	"github.com/civicledger/voting-service/internal/redis"
)

func GetAllCandidates(ctx context.Context) ([]models.Candidate, error) {
	var cursor uint64
	var keys []string
	var err error
	allCandidates := make([]models.Candidate, 0)
	r := redis.Rdb
	for {
		keys, cursor, err = r.Scan(ctx, cursor, "candidate:*", 100).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			data, err := r.HGetAll(ctx, key).Result()
			if err != nil || len(data) == 0 {
				continue
			}

			var candidate models.Candidate
			err = mapstructure.Decode(data, &candidate)
			if err != nil {
				continue
			}
			if n, err := strconv.ParseInt(data["vote_count"], 10, 64); err == nil {
				candidate.VoteCount = n
			}
			if n, err := strconv.ParseInt(data["supporter_count"], 10, 64); err == nil {
				candidate.SupporterCount = n
			}
			allCandidates = append(allCandidates, candidate)
		}

		if cursor == 0 {
			break
		}
	}

	return allCandidates, nil
}
