package sortedstorage

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var _ i.SortedIndex = &RedisSortedIndex{}

// RedisSortedIndex keeps a score ordered index in a Redis sorted set with TTL support.
type RedisSortedIndex struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisSortedIndex initializes a RedisSortedIndex with the provided Redis client and TTL.
// A non-positive TTL leaves keys without expiry.
func NewRedisSortedIndex(client *redis.Client, ttlSeconds int) *RedisSortedIndex {
	index := &RedisSortedIndex{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	index.locker = redsync.New(pool)
	return index
}

// Add inserts member with the given score and sets expiration if necessary.
func (rsi *RedisSortedIndex) Add(ctx context.Context, key string, score float64, member string) error {
	if err := rsi.client.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return err
	}

	if rsi.ttl <= 0 {
		return nil
	}

	// Set expiration only if it's not already set
	ttl, err := rsi.client.TTL(ctx, key).Result()
	if err == nil && ttl == -1 {
		_ = rsi.client.Expire(ctx, key, rsi.ttl).Err()
	}

	return nil
}

// Top returns up to amount members with the highest scores, highest first.
func (rsi *RedisSortedIndex) Top(ctx context.Context, key string, amount int64) ([]string, error) {
	if amount <= 0 {
		return []string{}, nil
	}
	return rsi.client.ZRevRange(ctx, key, 0, amount-1).Result()
}

// Trim drops everything but the keep highest scored members. Concurrent trims of
// one key are serialized with a distributed lock.
func (rsi *RedisSortedIndex) Trim(ctx context.Context, key string, keep int64) error {
	mutex := rsi.locker.NewMutex(key + ":trim_lock")
	if err := mutex.LockContext(ctx); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	if keep <= 0 {
		return rsi.client.Del(ctx, key).Err()
	}
	return rsi.client.ZRemRangeByRank(ctx, key, 0, -(keep + 1)).Err()
}

// Count returns the number of members under key.
func (rsi *RedisSortedIndex) Count(ctx context.Context, key string) int64 {
	return rsi.client.ZCard(ctx, key).Val()
}
