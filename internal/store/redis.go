package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRefreshTokenStore keeps ledger entries in Redis with the key TTL set
// to the remaining refresh-token lifetime, so entries expire together with
// the tokens they describe.
type RedisRefreshTokenStore struct {
	client *redis.Client
}

func NewRedisRefreshTokenStore(addr, password string, db int) (*RedisRefreshTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisRefreshTokenStore{client: client}, nil
}

func (s *RedisRefreshTokenStore) Save(token string, entry LedgerEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), ledgerKey(token), data, ttl).Err()
}

func (s *RedisRefreshTokenStore) Find(token string) (LedgerEntry, bool, error) {
	data, err := s.client.Get(context.Background(), ledgerKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return LedgerEntry{}, false, nil
	}
	if err != nil {
		return LedgerEntry{}, false, err
	}

	var entry LedgerEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return LedgerEntry{}, false, err
	}
	return entry, true, nil
}

func (s *RedisRefreshTokenStore) Delete(token string) error {
	return s.client.Del(context.Background(), ledgerKey(token)).Err()
}

func ledgerKey(token string) string {
	return "refresh:" + token
}
