package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionRepository keeps bearer sessions in Redis with a sliding TTL
type SessionRepository interface {
	Create(ctx context.Context, userID uint64, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (uint64, error)
	Refresh(ctx context.Context, token string, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (r *sessionRepository) Create(ctx context.Context, userID uint64, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	err := r.client.Set(ctx, sessionKey(token), strconv.FormatUint(userID, 10), ttl).Err()
	if err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get returns 0 with a nil error when the token is unknown or expired
func (r *sessionRepository) Get(ctx context.Context, token string) (uint64, error) {
	val, err := r.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse session value: %w", err)
	}
	return userID, nil
}

func (r *sessionRepository) Refresh(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.client.Expire(ctx, sessionKey(token), ttl).Err(); err != nil {
		return fmt.Errorf("failed to refresh session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
