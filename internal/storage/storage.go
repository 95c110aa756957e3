// internal/storage/storage.go
package storage

import (
	"context"

	"github.com/rotisserie/eris"

	"mongol-march/internal/config"
)

// ScoreStore хранит лучший счёт между сессиями
type ScoreStore interface {
	BestScore(ctx context.Context) (int, error)
	SaveBestScore(ctx context.Context, score int) error
	Close() error
}

// Open выбирает хранилище по настройкам
func Open(cfg config.Config) (ScoreStore, error) {
	switch cfg.ScoreStore {
	case config.StoreFile:
		return NewFileStore(cfg.ScoreFile), nil
	case config.StoreRedis:
		return NewRedisStore(cfg.RedisAddr, cfg.RedisPassword), nil
	case config.StoreMemory:
		return NewMemoryStore(), nil
	}
	return nil, eris.Errorf("unknown score store %q", cfg.ScoreStore)
}

// RecordBest сохраняет score, если он лучше сохранённого. Возвращает итоговый рекорд.
func RecordBest(ctx context.Context, store ScoreStore, score int) (best int, isNew bool, err error) {
	best, err = store.BestScore(ctx)
	if err != nil {
		return 0, false, eris.Wrap(err, "failed to read best score")
	}
	if score <= best {
		return best, false, nil
	}
	if err := store.SaveBestScore(ctx, score); err != nil {
		return best, false, eris.Wrap(err, "failed to save best score")
	}
	return score, true, nil
}
