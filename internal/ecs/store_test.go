package ecs

import (
	"testing"

	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/core/types/enums"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetRemove(t *testing.T) {
	s := NewStore[int](nil)
	a := types.PackEntityID(enums.EntityKindMonster, 1, 0)
	b := types.PackEntityID(enums.EntityKindMonster, 1, 1)
	c := types.PackEntityID(enums.EntityKindMonster, 1, 2)

	s.Set(a, 1)
	s.Set(b, 2)
	s.Set(c, 3)
	s.Set(a, 10)

	require.Equal(t, 3, s.Count())
	v, ok := s.Get(a)
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	s.Remove(a)
	assert.False(t, s.Has(a))
	assert.Equal(t, []types.EntityID{c, b}, s.All(), "swap-remove moves the last element into the hole")

	// Перемещённый элемент доступен по своему ID
	v, ok = s.Get(c)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	s.Remove(a)
	assert.Equal(t, 2, s.Count())
}

func TestStore_Ptr(t *testing.T) {
	s := NewStore[hp](nil)
	e := types.PackEntityID(enums.EntityKindPlayer, 1, 0)

	assert.Nil(t, s.Ptr(e))

	s.Set(e, hp{cur: 5})
	s.Ptr(e).cur -= 3

	v, _ := s.Get(e)
	assert.Equal(t, 2, v.cur)
}

func TestStore_AllIsSnapshot(t *testing.T) {
	s := NewStore[int](nil)
	a := types.PackEntityID(enums.EntityKindMonster, 1, 0)
	s.Set(a, 1)

	all := s.All()
	s.Remove(a)

	assert.Len(t, all, 1)
	assert.Equal(t, 0, s.Count())
}

func TestStore_Clear(t *testing.T) {
	s := NewStore[[]int](nil)
	a := types.PackEntityID(enums.EntityKindMonster, 1, 0)
	s.Set(a, []int{1, 2})

	s.Clear()

	assert.Equal(t, 0, s.Count())
	assert.False(t, s.Has(a))
}
