package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"tutorly/config"
)

var (
	// TokenClient is the dedicated client for credential storage.
	TokenClient *redis.Client
)

// InitTokenClient initializes the Redis client used for bearer credential storage.
func InitTokenClient() {
	TokenClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTokenDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := TokenClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Tokens): %v", err)
	}
}

// GetTokenClient returns the Redis client for credential storage.
func GetTokenClient() *redis.Client {
	if TokenClient == nil {
		InitTokenClient()
	}
	return TokenClient
}
