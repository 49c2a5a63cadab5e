package auth

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisRevocationList хранит отозванные токены ключами <prefix><jti>.
// Ключи выставляет сервис учётных записей при logout, TTL равен сроку жизни токена.
type RedisRevocationList struct {
	client *redis.Client
	prefix string
}

func NewRedisRevocationList(client *redis.Client, prefix string) *RedisRevocationList {
	return &RedisRevocationList{
		client: client,
		prefix: prefix,
	}
}

func (l *RedisRevocationList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, l.prefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
