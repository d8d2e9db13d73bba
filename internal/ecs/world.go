package ecs

import (
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/core/types/enums"
	"cognitive-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// World выдаёт идентификаторы сущностей и хранит отложенные структурные изменения.
//
// Создание и удаление во время шага ставятся в очередь и применяются
// одним вызовом Maintain() в конце шага. До этого момента все системы
// видят один и тот же набор сущностей.
type World struct {
	generations []uint16
	alive       []bool
	free        []uint32
	live        int

	stores []QueryableStore

	pending []command
}

type commandKind uint8

const (
	cmdDestroy commandKind = iota
	cmdSpawn
)

type command struct {
	kind    commandKind
	id      types.EntityID
	entKind enums.EntityKind
	build   func(types.EntityID)
}

func NewWorld() *World {
	return &World{}
}

func (w *World) register(s QueryableStore) {
	w.stores = append(w.stores, s)
}

// Create немедленно создаёт сущность. Используется при сборке мира,
// внутри шага нужно вызывать Spawn.
func (w *World) Create(kind enums.EntityKind) types.EntityID {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.generations))
		// Поколение 0 зарезервировано под NilEntityID
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	w.live++
	return types.PackEntityID(kind, w.generations[idx], idx)
}

// Alive сообщает, жива ли сущность. Устаревшие ссылки (старое поколение) - не живые.
func (w *World) Alive(id types.EntityID) bool {
	if id.IsNil() {
		return false
	}
	idx := id.Index()
	if int(idx) >= len(w.generations) {
		return false
	}
	return w.alive[idx] && w.generations[idx] == id.Generation()
}

// Destroy немедленно удаляет сущность и все её компоненты.
// Повторное удаление и удаление по устаревшей ссылке ничего не делают.
func (w *World) Destroy(id types.EntityID) bool {
	if !w.Alive(id) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(id)
	}
	idx := id.Index()
	w.alive[idx] = false
	w.generations[idx]++
	if w.generations[idx] == 0 {
		w.generations[idx] = 1
	}
	w.free = append(w.free, idx)
	w.live--
	return true
}

// DeferDestroy ставит удаление в очередь до Maintain().
func (w *World) DeferDestroy(id types.EntityID) {
	w.pending = append(w.pending, command{kind: cmdDestroy, id: id})
}

// Spawn ставит создание в очередь. build вызывается с новым ID внутри Maintain().
func (w *World) Spawn(kind enums.EntityKind, build func(types.EntityID)) {
	w.pending = append(w.pending, command{kind: cmdSpawn, entKind: kind, build: build})
}

// Pending возвращает количество ещё не применённых команд.
func (w *World) Pending() int {
	return len(w.pending)
}

// Maintain применяет отложенные команды в порядке поступления.
// Возвращает количество реально удалённых сущностей.
func (w *World) Maintain() int {
	if len(w.pending) == 0 {
		return 0
	}
	queue := w.pending
	w.pending = nil

	removed := 0
	for _, cmd := range queue {
		switch cmd.kind {
		case cmdDestroy:
			if w.Destroy(cmd.id) {
				removed++
			}
		case cmdSpawn:
			id := w.Create(cmd.entKind)
			if cmd.build != nil {
				cmd.build(id)
			}
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "ecs",
		"commands":  len(queue),
		"removed":   removed,
		"live":      w.live,
	}).Debug("World maintained")

	return removed
}

// Count - количество живых сущностей.
func (w *World) Count() int {
	return w.live
}
