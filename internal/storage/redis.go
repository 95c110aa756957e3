// internal/storage/redis.go
package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

const bestScoreKey = "mongol-march:best-score"

// RedisStore — рекорд в Redis, общий для нескольких машин
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(addr, password string) *RedisStore {
	return NewRedisStoreWithClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}))
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) BestScore(ctx context.Context) (int, error) {
	score, err := s.client.Get(ctx, bestScoreKey).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, eris.Wrap(err, "failed to get best score")
	}
	return score, nil
}

func (s *RedisStore) SaveBestScore(ctx context.Context, score int) error {
	return eris.Wrap(s.client.Set(ctx, bestScoreKey, score, 0).Err(), "failed to set best score")
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
