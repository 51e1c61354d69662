// Copyright (c) 2026 Forge AHEAD Center. All rights reserved.

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/apperr"
	"github.com/uabcampos/fac-virtual-posters/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] using Redis.
//
// Each refresh session is one key under [constants.RedisPrefixSession] with
// the TTL doing double duty as the session expiry. There is no separate
// cleanup job; Redis evicts expired sessions on its own.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

/*
Set stores a refresh session under its token hash with the given TTL.
*/
func (repository *RedisSessionRepository) Set(context context.Context, tokenHash string, session *Session, ttl time.Duration) error {

	// Sessions serialize as small JSON blobs
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	if err := repository.client.Set(context, sessionKey(tokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

/*
Get retrieves the session for a token hash.

Description: Returns apperr.NotFound when the key is absent, which covers
both never-issued tokens and sessions Redis has already expired.
*/
func (repository *RedisSessionRepository) Get(context context.Context, tokenHash string) (*Session, error) {

	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}

	return session, nil
}

/*
Delete revokes a session by removing its key. Deleting an absent key is not
an error; revocation is idempotent.
*/
func (repository *RedisSessionRepository) Delete(context context.Context, tokenHash string) error {

	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}
