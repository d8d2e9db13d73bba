package ecs

import "cognitive-rogue/internal/core/types"

// QueryableStore - то, что нужно запросу и миру от хранилища любого типа.
type QueryableStore interface {
	Has(e types.EntityID) bool
	Remove(e types.EntityID)
	Count() int
	All() []types.EntityID
	Clear()
}

// Store - хранилище компонентов одного типа (sparse set).
// dense-массивы хранят значения подряд, sparse-карта отдаёт позицию по ID.
// Порядок обхода - порядок вставки с поправкой на swap-remove, он детерминирован.
type Store[T any] struct {
	sparse   map[types.EntityID]int
	entities []types.EntityID
	values   []T
}

// NewStore создаёт хранилище и регистрирует его в мире,
// чтобы удаление сущности освобождало её компоненты.
func NewStore[T any](w *World) *Store[T] {
	s := &Store[T]{
		sparse:   make(map[types.EntityID]int),
		entities: make([]types.EntityID, 0, 64),
		values:   make([]T, 0, 64),
	}
	if w != nil {
		w.register(s)
	}
	return s
}

// Set вставляет или заменяет компонент сущности.
func (s *Store[T]) Set(e types.EntityID, val T) {
	if i, ok := s.sparse[e]; ok {
		s.values[i] = val
		return
	}
	s.sparse[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get возвращает копию компонента.
func (s *Store[T]) Get(e types.EntityID) (T, bool) {
	if i, ok := s.sparse[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// Ptr возвращает указатель на компонент внутри хранилища.
// Указатель действителен до следующего Set/Remove в этом хранилище.
func (s *Store[T]) Ptr(e types.EntityID) *T {
	if i, ok := s.sparse[e]; ok {
		return &s.values[i]
	}
	return nil
}

func (s *Store[T]) Has(e types.EntityID) bool {
	_, ok := s.sparse[e]
	return ok
}

// Remove удаляет компонент. Отсутствующий компонент - не ошибка.
func (s *Store[T]) Remove(e types.EntityID) {
	i, ok := s.sparse[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		moved := s.entities[last]
		s.entities[i] = moved
		s.values[i] = s.values[last]
		s.sparse[moved] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.sparse, e)
}

func (s *Store[T]) Count() int {
	return len(s.entities)
}

// All возвращает копию списка сущностей, владеющих компонентом.
func (s *Store[T]) All() []types.EntityID {
	out := make([]types.EntityID, len(s.entities))
	copy(out, s.entities)
	return out
}

// Clear удаляет все компоненты, не трогая сами сущности.
func (s *Store[T]) Clear() {
	var zero T
	for i := range s.values {
		s.values[i] = zero
	}
	s.entities = s.entities[:0]
	s.values = s.values[:0]
	clear(s.sparse)
}
