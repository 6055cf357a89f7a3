package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teamup-api/internal/storage"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "refresh:"

// RefreshTokenStore implements storage.RefreshTokenStore on Redis. Tokens
// expire via key TTL; nothing is ever scanned.
type RefreshTokenStore struct {
	client *redis.Client
}

// NewRefreshTokenStore creates a new RefreshTokenStore.
func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

var _ storage.RefreshTokenStore = (*RefreshTokenStore)(nil)

func (s *RefreshTokenStore) Save(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKeyPrefix+token, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *RefreshTokenStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := s.client.Get(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, storage.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to resolve refresh token: %w", err)
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt refresh token entry: %w", err)
	}

	return userID, nil
}

func (s *RefreshTokenStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, refreshKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
