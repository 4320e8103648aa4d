package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rookgm/chefbazaar/internal/models"
)

const (
	keyPrefix  = "reconciliation:"
	defaultTTL = 24 * time.Hour
)

// ReconciliationCache keeps outcome of reconciled checkout sessions.
// Only committed reconciliations are stored, they never change afterwards.
type ReconciliationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewReconciliationCache creates new cache on top of redis client
func NewReconciliationCache(rdb *redis.Client) *ReconciliationCache {
	return &ReconciliationCache{rdb: rdb, ttl: defaultTTL}
}

// Connect creates redis client and checks the connection
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return rdb, nil
}

// Get returns cached reconciliation for session
func (c *ReconciliationCache) Get(ctx context.Context, sessionID string) (*models.Reconciliation, bool, error) {
	data, err := c.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var rec models.Reconciliation
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("decode cached reconciliation: %w", err)
	}

	return &rec, true, nil
}

// Set stores reconciliation for session
func (c *ReconciliationCache) Set(ctx context.Context, sessionID string, rec models.Reconciliation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, keyPrefix+sessionID, data, c.ttl).Err()
}
