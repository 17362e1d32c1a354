package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix = "cart:"

	maxUpdateAttempts = 5
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func decodeCart(raw []byte, err error) (*Cart, error) {
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	c := New()
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RedisStore) Load(ctx context.Context, customerID string) (*Cart, error) {
	return decodeCart(s.client.Get(ctx, cartKeyPrefix+customerID).Bytes())
}

// Update runs fn under WATCH on the cart key and retries when another writer
// got there first. Every successful write refreshes the TTL.
func (s *RedisStore) Update(ctx context.Context, customerID string, fn func(*Cart) error) (*Cart, error) {
	key := cartKeyPrefix + customerID

	var updated *Cart
	txf := func(tx *redis.Tx) error {
		c, err := decodeCart(tx.Get(ctx, key).Bytes())
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}

		raw, err := json.Marshal(c)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)
			return nil
		})
		if err == nil {
			updated = c
		}
		return err
	}

	for i := 0; i < maxUpdateAttempts; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			return nil, err
		}
	}
	return nil, ErrCartBusy
}

func (s *RedisStore) Delete(ctx context.Context, customerID string) error {
	return s.client.Del(ctx, cartKeyPrefix+customerID).Err()
}
