package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache stores the whitelist of issued tokens in Redis.
// Key format: whiteList:<userId>
type TokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a TokenCache wrapping the given Redis client.
func NewTokenCache(client *redis.Client) *TokenCache {
	return &TokenCache{client: client}
}

// Set records the last issued token for the user, replacing any previous one.
func (c *TokenCache) Set(ctx context.Context, userID int, token string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(userID), token, ttl).Err()
}

// Get returns the cached token for the user, or empty when none exists.
func (c *TokenCache) Get(ctx context.Context, userID int) (string, error) {
	token, err := c.client.Get(ctx, c.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("token cache get: %w", err)
	}
	return token, nil
}

// Delete removes the whitelist entry. Deleting a missing key is a no-op.
func (c *TokenCache) Delete(ctx context.Context, userID int) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

// IsWhitelisted reports whether the presented token is the one currently
// cached for the user.
func (c *TokenCache) IsWhitelisted(ctx context.Context, userID int, token string) (bool, error) {
	cached, err := c.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	return cached != "" && cached == token, nil
}

func (c *TokenCache) key(userID int) string {
	return fmt.Sprintf("whiteList:%d", userID)
}
