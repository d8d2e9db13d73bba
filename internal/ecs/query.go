package ecs

import (
	"sort"

	"cognitive-rogue/internal/core/types"
)

// QueryBuilder ищет сущности, у которых есть компоненты во всех указанных хранилищах.
//
// Пример:
//
//	ids := world.Query().
//	    With(c.Positions).
//	    With(c.Viewsheds).
//	    Execute()
type QueryBuilder struct {
	stores   []QueryableStore
	executed bool
	results  []types.EntityID
}

func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{stores: make([]QueryableStore, 0, 4)}
}

// With добавляет фильтр. После Execute() запрос менять нельзя.
func (qb *QueryBuilder) With(store QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, store)
	return qb
}

// Execute пересекает множества, начиная с самого маленького хранилища.
// Результат - снимок: изменения хранилищ после вызова на него не влияют.
func (qb *QueryBuilder) Execute() []types.EntityID {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = []types.EntityID{}
		return qb.results
	}

	// Стабильная сортировка, чтобы порядок обхода не зависел от случая
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})

	candidates := qb.stores[0].All()
	for _, store := range qb.stores[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	qb.results = candidates
	return qb.results
}
