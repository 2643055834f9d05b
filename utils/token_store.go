package utils

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const bearerTokenKey = "remoteAPI:bearerToken"

// ErrNoToken is returned when no bearer token is currently stored.
var ErrNoToken = errors.New("no bearer token stored")

// RedisTokenStore persists the bearer token used against the remote
// appointments API. The gateway clears it when the API answers 401 so
// the next authenticated action forces re-authentication.
type RedisTokenStore struct {
	client *redis.Client
}

// NewRedisTokenStore returns a token store backed by the given Redis client.
// When seed is non-empty it is written as the initial token.
func NewRedisTokenStore(client *redis.Client, seed string) *RedisTokenStore {
	store := &RedisTokenStore{client: client}
	if seed != "" {
		if err := store.Set(context.Background(), seed); err != nil {
			GetLogger().Sugar().Warnf("token store: failed to seed bearer token: %v", err)
		}
	}
	return store
}

// Get returns the stored bearer token, or ErrNoToken when absent.
func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, bearerTokenKey).Result()
	if err == redis.Nil {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Set stores the bearer token. Tokens have no TTL here; the remote API
// owns expiry and signals it with a 401.
func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	return s.client.Set(ctx, bearerTokenKey, token, 0).Err()
}

// Clear removes the stored bearer token.
func (s *RedisTokenStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, bearerTokenKey).Err()
}
