package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "doc:"

	// Update retries on write conflict before giving up.
	maxUpdateRetries = 5
)

type redisStore struct {
	client *redis.Client
}

// NewRedis returns a Store backed by Redis. Each document lives whole in a
// single key, JSON-encoded.
func NewRedis(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Read(ctx context.Context, name string, out interface{}) (bool, error) {
	data, err := s.client.Get(ctx, keyPrefix+name).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal document %s: %w", name, err)
	}
	return true, nil
}

func (s *redisStore) Write(ctx context.Context, name string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", name, err)
	}
	return s.client.Set(ctx, keyPrefix+name, data, 0).Err()
}

// Update runs apply under WATCH so the write only lands if the document was
// not modified in between. On conflict the whole read-modify-write is
// retried.
func (s *redisStore) Update(ctx context.Context, name string, apply UpdateFunc) error {
	key := keyPrefix + name

	txn := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			raw = nil
		} else if err != nil {
			return fmt.Errorf("failed to read document %s: %w", name, err)
		}

		doc, err := apply(raw)
		if err != nil {
			return err
		}

		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal document %s: %w", name, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("failed to update document %s: too many write conflicts", name)
}
