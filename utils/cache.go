// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"modernschedule/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient is the dedicated client for auth session storage.
	SessionCacheClient *redis.Client
	// SelectionCacheClient holds per-session selection cursors.
	SelectionCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for auth sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for auth sessions.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitSelectionCache initializes the Redis client for selection cursors.
func InitSelectionCache() {
	SelectionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSelectionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SelectionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Selection): %v", err)
	}
}

// GetSelectionCacheClient returns the Redis client for selection cursors.
func GetSelectionCacheClient() *redis.Client {
	if SelectionCacheClient == nil {
		InitSelectionCache()
	}
	return SelectionCacheClient
}
