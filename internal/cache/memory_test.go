package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, m.Set(ctx, "key", []byte("value"), time.Minute))

	got, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key", []byte("value"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := m.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "key", []byte("value"), time.Minute))
	require.NoError(t, m.Delete(ctx, "key"))

	_, err := m.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrMiss)

	// Deleting an absent key is not an error
	assert.NoError(t, m.Delete(ctx, "key"))
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, m.Set(ctx, "key", original, time.Minute))
	original[0] = 'X'

	got, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	// Mutating the returned slice must not poison the stored entry
	got[0] = 'Y'
	again, err := m.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}
