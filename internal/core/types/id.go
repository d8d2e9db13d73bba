package types

import (
	"fmt"
	"strconv"

	"cognitive-rogue/internal/core/types/enums"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityID - 64-битный идентификатор сущности в ECS.
//
// EntityID является value-type: дёшево копируется и сравнивается,
// поэтому им можно ссылаться на цель атаки из компонента намерения.
//
// Формат битов (от старших к младшим):
//
//	[ Reserved (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Kind - тип сущности (Player, Monster)
//   - Generation - версия слота; растёт при каждом переиспользовании индекса
//   - Index - индекс слота в хранилище мира
//
// Ссылка с устаревшим поколением указывает на уже удалённую сущность.
type EntityID uint64

// NilEntityID - нулевой идентификатор сущности.
//
// Живые сущности всегда имеют поколение >= 1, поэтому ноль не может
// совпасть ни с одной реальной сущностью.
const NilEntityID EntityID = 0

const (
	// bitsIndex - количество бит под индекс слота.
	bitsIndex = 32

	// bitsGen - количество бит под поколение слота.
	bitsGen = 16

	// bitsKind - количество бит под тип сущности.
	bitsKind = 8

	shiftGen  = bitsIndex
	shiftKind = bitsIndex + bitsGen

	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
)

var _ core.Entity = EntityID(0)

// PackEntityID собирает EntityID из составных частей.
//
// Функция не выполняет проверок диапазонов и просто отбрасывает
// лишние старшие биты каждого поля.
func PackEntityID(kind enums.EntityKind, gen uint16, index uint32) EntityID {
	return EntityID(
		(uint64(kind)&maskKind)<<shiftKind |
			(uint64(gen)&maskGen)<<shiftGen |
			uint64(index),
	)
}

// Index возвращает индекс слота сущности.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота сущности.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает тип сущности.
func (id EntityID) Kind() enums.EntityKind {
	return enums.EntityKind((id >> shiftKind) & maskKind)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// GetID реализует core.Entity: десятичное представление идентификатора.
func (id EntityID) GetID() string {
	return strconv.FormatUint(uint64(id), 10)
}

// GetType реализует core.Entity.
func (id EntityID) GetType() string {
	return id.Kind().String()
}

// String возвращает человекочитаемое представление для логов.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf("[%s gen=%d idx=%d]", id.Kind(), id.Generation(), id.Index())
}
