package match

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "match:candidates:"

// Cache stores ranked candidate lists in Redis. Entries expire after a
// short TTL; block and unblock invalidate both endpoints eagerly so a
// just-blocked user never surfaces from a stale entry.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a match cache. client may be nil; all operations
// then degrade to misses and no-ops.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached candidate list for the user, if any
func (c *Cache) Get(ctx context.Context, userID uuid.UUID) ([]*Candidate, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, cacheKeyPrefix+userID.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Debug().Err(err).Str("user_id", userID.String()).Msg("Match cache read failed")
		}
		return nil, false
	}

	var candidates []*Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		log.Debug().Err(err).Str("user_id", userID.String()).Msg("Match cache entry corrupt")
		return nil, false
	}

	return candidates, true
}

// Set stores the candidate list for the user
func (c *Cache) Set(ctx context.Context, userID uuid.UUID, candidates []*Candidate) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(candidates)
	if err != nil {
		log.Debug().Err(err).Str("user_id", userID.String()).Msg("Match cache marshal failed")
		return
	}

	if err := c.client.Set(ctx, cacheKeyPrefix+userID.String(), data, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Str("user_id", userID.String()).Msg("Match cache write failed")
	}
}

// Invalidate drops cached results for the given users
func (c *Cache) Invalidate(ctx context.Context, userIDs ...uuid.UUID) {
	if c == nil || c.client == nil || len(userIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, cacheKeyPrefix+id.String())
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Debug().Err(err).Msg("Match cache invalidation failed")
	}
}
