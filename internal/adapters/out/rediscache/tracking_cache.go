// Package rediscache caches tracking entries in Redis so repeated track requests
// skip the database.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached entry may get when an invalidation is lost.
const DefaultTTL = 5 * time.Minute

const keyPrefix = "parcel:tracking:"

// maxSetAttempts bounds the optimistic retries of Set under contention.
const maxSetAttempts = 5

// TrackingCache implements ports.TrackingCache on a Redis client.
type TrackingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTrackingCache connects to redisURL, in the form
// redis://[:password@]host[:port][/database]. A ttl of zero selects DefaultTTL.
func NewTrackingCache(redisURL string, ttl time.Duration) (*TrackingCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &TrackingCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

func (c *TrackingCache) Get(ctx context.Context, id kernel.ParcelID) (ports.TrackingEntry, bool, error) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.TrackingEntry{}, false, nil
	}
	if err != nil {
		return ports.TrackingEntry{}, false, fmt.Errorf("failed to get tracking entry %s: %w", id, err)
	}

	var entry ports.TrackingEntry
	if err = json.Unmarshal(raw, &entry); err != nil {
		return ports.TrackingEntry{}, false, fmt.Errorf("failed to decode tracking entry %s: %w", id, err)
	}

	return entry, true, nil
}

// Set writes entry inside a WATCH transaction on its key, so an entry read
// from an older tracker version never replaces a newer one.
func (c *TrackingCache) Set(ctx context.Context, entry ports.TrackingEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode tracking entry %d: %w", entry.ParcelID, err)
	}

	k := keyPrefix + strconv.FormatUint(entry.ParcelID, 10)
	txf := func(tx *redis.Tx) error {
		current, getErr := tx.Get(ctx, k).Bytes()
		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return getErr
		}
		if getErr == nil {
			var stored ports.TrackingEntry
			// an undecodable entry is overwritten
			if json.Unmarshal(current, &stored) == nil && stored.Version > entry.Version {
				return nil
			}
		}

		_, pipeErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, k, raw, c.ttl)
			return nil
		})
		return pipeErr
	}

	for range maxSetAttempts {
		err = c.client.Watch(ctx, txf, k)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to set tracking entry %d: %w", entry.ParcelID, err)
	}
	return nil
}

func (c *TrackingCache) Delete(ctx context.Context, id kernel.ParcelID) error {
	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete tracking entry %s: %w", id, err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (c *TrackingCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *TrackingCache) Close() error {
	return c.client.Close()
}

func key(id kernel.ParcelID) string {
	return keyPrefix + id.String()
}
