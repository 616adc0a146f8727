package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"posada/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// Store persists resolved sessions in Redis, keyed by a hash of the
// bearer token. The token itself is never written out.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store with the given TTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}

// Save caches the claim set for a token.
func (s *Store) Save(ctx context.Context, token string, user models.CurrentUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Get returns the cached claim set for a token, or nil on a miss.
func (s *Store) Get(ctx context.Context, token string) (*models.CurrentUser, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user models.CurrentUser
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	// Refresh the sliding TTL on every hit.
	_ = s.client.Expire(ctx, sessionKey(token), s.ttl).Err()
	return &user, nil
}

// Delete removes the cached session for a token.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
