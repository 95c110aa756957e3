// internal/storage/memory.go
package storage

import "context"

// MemoryStore живёт до конца процесса (headless-прогоны, тесты)
type MemoryStore struct {
	best int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) BestScore(context.Context) (int, error) { return s.best, nil }

func (s *MemoryStore) SaveBestScore(_ context.Context, score int) error {
	s.best = score
	return nil
}

func (s *MemoryStore) Close() error { return nil }
