package memcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResetTokenStore keeps single-use password-reset codes keyed by token.
type ResetTokenStore interface {
	Set(ctx context.Context, token string, accountEmail string, ttl time.Duration) error

	// Consume returns the account email for token if not expired and removes
	// it (single-use). Returns "" when missing or expired.
	Consume(ctx context.Context, token string) (string, error)

	Peek(ctx context.Context, token string) (string, error)
}

const resetKeyPrefix = "reset_token:"

type redisResetTokens struct {
	client *redis.Client
}

func NewRedisResetTokens(client *redis.Client) ResetTokenStore {
	return &redisResetTokens{client: client}
}

func (s *redisResetTokens) Set(ctx context.Context, token string, accountEmail string, ttl time.Duration) error {
	return s.client.Set(ctx, resetKeyPrefix+token, accountEmail, ttl).Err()
}

func (s *redisResetTokens) Consume(ctx context.Context, token string) (string, error) {
	email, err := s.client.GetDel(ctx, resetKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return email, nil
}

func (s *redisResetTokens) Peek(ctx context.Context, token string) (string, error) {
	email, err := s.client.Get(ctx, resetKeyPrefix+token).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return email, nil
}
