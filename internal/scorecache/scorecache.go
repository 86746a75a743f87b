// Package scorecache mirrors the scoreboard into a Redis sorted set so a
// projector screen can poll ranks without touching SQLite. The database
// stays the source of truth; the cache is rebuilt in full on every score
// change and on startup, so a Redis flush costs nothing but one publish.
package scorecache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spacieba/miss-france/internal/logger"
	"github.com/spacieba/miss-france/internal/models"
	"github.com/spacieba/miss-france/internal/services"
)

const scoreboardKey = "missfrance:scoreboard"

var _ services.Projector = (*Cache)(nil)

// Cache projects leaderboard snapshots into a Redis ZSET
type Cache struct {
	client *redis.Client
	log    logger.Logger
	ttl    time.Duration
}

// New creates a Cache on an existing Redis client
func New(client *redis.Client, log logger.Logger, ttl time.Duration) *Cache {
	return &Cache{client: client, log: log, ttl: ttl}
}

// Publish replaces the cached scoreboard with the given snapshot. The
// delete and rewrite run in one pipeline so pollers never observe a
// half-written set.
func (c *Cache) Publish(ctx context.Context, entries []models.LeaderboardEntry) error {
	members := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		members = append(members, redis.Z{Score: e.TotalScore, Member: e.Pseudo})
	}

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, scoreboardKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, scoreboardKey, members...)
	}
	if c.ttl > 0 {
		pipe.Expire(ctx, scoreboardKey, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	c.log.Debug("Scoreboard projected", "entries", len(members))
	return nil
}

// Top returns up to n cached pseudo/score pairs, best first
func (c *Cache) Top(ctx context.Context, n int) ([]models.LeaderboardEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	members, err := c.client.ZRevRangeWithScores(ctx, scoreboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]models.LeaderboardEntry, 0, len(members))
	for i, m := range members {
		pseudo, _ := m.Member.(string)
		entries = append(entries, models.LeaderboardEntry{
			Rank:       i + 1,
			Pseudo:     pseudo,
			TotalScore: m.Score,
		})
	}
	return entries, nil
}

// Ping verifies the Redis connection
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
