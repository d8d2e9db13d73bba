package rng

import (
	"fmt"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Source - детерминированный генератор случайных чисел сессии.
// Один и тот же seed даёт одну и ту же последовательность (и ту же карту).
type Source struct {
	seed int64
	r    *rand.Rand
}

var _ dice.Roller = (*Source)(nil)

// New создаёт источник с заданным зерном
func New(seed int64) *Source {
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed возвращает зерно, с которого начался источник
func (s *Source) Seed() int64 {
	return s.seed
}

// Roll бросает один кубик с size гранями: [1..size].
func (s *Source) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid die size: %d", size)
	}
	return s.r.Intn(size) + 1, nil
}

// RollN бросает count кубиков с size гранями и возвращает каждый результат.
func (s *Source) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, fmt.Errorf("invalid dice count: %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// RollDice - сумма броска NdS (например 1d2 или 3d6).
// Некорректные параметры дают 0, как пустой бросок.
func (s *Source) RollDice(n, sides int) int {
	rolls, err := s.RollN(n, sides)
	if err != nil {
		return 0
	}
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total
}

// Range возвращает число в [min, max] включительно.
// Если max < min, возвращается min.
func (s *Source) Range(min, max int) int {
	if max <= min {
		return min
	}
	return s.r.Intn(max-min+1) + min
}

// CoinFlip - честная монетка
func (s *Source) CoinFlip() bool {
	return s.r.Intn(2) == 0
}
