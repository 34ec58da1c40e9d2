package services

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/letsscience/quiz_api/dto"

	appContext "github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
)

// RedisService keeps the score leaderboard in a sorted set. The set is a
// mirror of the users table, rebuilt lazily as scores change, so it can be
// flushed without losing anything.
type RedisService struct {
	appContext.DefaultService
	redis *redis.Client
}

const REDIS_SVC = "redis_svc"

const leaderboardKey = "leaderboard:score"

func (svc RedisService) Id() string {
	return REDIS_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	svc.initRedisClient()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) Start() error {
	if svc.redis != nil {
		ctx := context.Background()
		_, err := svc.redis.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}
	return nil
}

func (svc *RedisService) initRedisClient() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
}

func (svc *RedisService) GetClient() *redis.Client {
	return svc.redis
}

// SetLeaderboardScore writes the user's current total. ZAdd overwrites the
// member score, so replaying an older total is harmless as long as callers
// always pass the value read back from the store.
func (svc *RedisService) SetLeaderboardScore(ctx context.Context, userID string, score int64) error {
	if svc.redis == nil {
		return fmt.Errorf("redis client not initialized")
	}

	return svc.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(score),
		Member: userID,
	}).Err()
}

// GetTopByScore returns the highest scorers, best first, with 1-based ranks.
func (svc *RedisService) GetTopByScore(ctx context.Context, limit int64) ([]dto.LeaderboardEntry, error) {
	if svc.redis == nil {
		return nil, fmt.Errorf("redis client not initialized")
	}

	members, err := svc.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]dto.LeaderboardEntry, 0, len(members))
	for i, member := range members {
		userID, ok := member.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, dto.LeaderboardEntry{
			UserID: userID,
			Score:  int64(member.Score),
			Rank:   int64(i) + 1,
		})
	}
	return entries, nil
}
