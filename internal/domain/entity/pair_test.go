package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPair_NormalizesOrder(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("ffffffff-0000-0000-0000-000000000001")

	forward := NewPair(a, b)
	reversed := NewPair(b, a)

	assert.Equal(t, forward, reversed)
	assert.Equal(t, a, forward.UserA)
	assert.Equal(t, b, forward.UserB)
}

func TestPair_ContainsAndOther(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	stranger := uuid.New()
	pair := NewPair(a, b)

	assert.True(t, pair.Contains(a))
	assert.True(t, pair.Contains(b))
	assert.False(t, pair.Contains(stranger))

	other, ok := pair.Other(a)
	require.True(t, ok)
	assert.Equal(t, b, other)

	other, ok = pair.Other(b)
	require.True(t, ok)
	assert.Equal(t, a, other)

	_, ok = pair.Other(stranger)
	assert.False(t, ok)
}

func TestPair_UsersReturnsNormalizedOrder(t *testing.T) {
	a := uuid.MustParse("10000000-0000-0000-0000-000000000000")
	b := uuid.MustParse("20000000-0000-0000-0000-000000000000")

	users := NewPair(b, a).Users()
	assert.Equal(t, [2]uuid.UUID{a, b}, users)
}

func TestProximityEvent_ViewedByUser(t *testing.T) {
	viewer := uuid.New()
	event := &ProximityEvent{ViewedBy: []uuid.UUID{viewer}}

	assert.True(t, event.ViewedByUser(viewer))
	assert.False(t, event.ViewedByUser(uuid.New()))
}

func TestEventStatus_Terminal(t *testing.T) {
	assert.False(t, EventStatusActive.Terminal())
	assert.True(t, EventStatusEnded.Terminal())
	assert.True(t, EventStatusMatched.Terminal())
	assert.True(t, EventStatusIgnored.Terminal())
}
