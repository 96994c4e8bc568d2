// Copyright (c) 2026 Mark Rahimi. All rights reserved.
// Author: admin@markrahimi.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/markrahimi/folio/internal/platform/constants"
)

// ErrSessionNotFound is returned when a refresh token resolves to nothing,
// either because it was never issued, was revoked, or has expired.
var ErrSessionNotFound = errors.New("auth: session not found")

// RedisSessionStore implements [SessionStore] on Redis.
//
// Each session is one key with a TTL; revocation is deletion and expiry is
// handled entirely by Redis, so there is no cleanup job.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: constants.RefreshTokenTTL}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func (store *RedisSessionStore) Save(context context.Context, tokenHash, userID string) error {
	if err := store.client.Set(context, sessionKey(tokenHash), userID, store.ttl).Err(); err != nil {
		return fmt.Errorf("auth: failed to save session: %w", err)
	}
	return nil
}

func (store *RedisSessionStore) Resolve(context context.Context, tokenHash string) (string, error) {
	userID, err := store.client.Get(context, sessionKey(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("auth: failed to resolve session: %w", err)
	}
	return userID, nil
}

func (store *RedisSessionStore) Delete(context context.Context, tokenHash string) error {
	if err := store.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("auth: failed to delete session: %w", err)
	}
	return nil
}
