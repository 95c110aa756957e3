// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed возвращает фактический сид (полезно для воспроизведения партии)
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// PickN выбирает count элементов равновероятно, с возвращением.
func PickN[T any](s *PRNGService, elements []T, count int) []T {
	if len(elements) == 0 || count <= 0 {
		return nil
	}
	out := make([]T, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, elements[s.Intn(len(elements))])
	}
	return out
}

// Pick выбирает один элемент. Для пустого среза возвращает нулевое значение.
func Pick[T any](s *PRNGService, elements []T) T {
	var zero T
	if len(elements) == 0 {
		return zero
	}
	return elements[s.Intn(len(elements))]
}
