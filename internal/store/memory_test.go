package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKVStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKVStore()

	_, found, err := s.Get(ctx, "vault.salt")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "vault.salt", "c2FsdA=="))
	require.NoError(t, s.Set(ctx, "vault.salt", "b3ZlcndyaXR0ZW4="))

	v, found, err := s.Get(ctx, "vault.salt")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "b3ZlcndyaXR0ZW4=", v)
}

func TestMemoryKVStore_EmptyValueIsFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKVStore()

	require.NoError(t, s.Set(ctx, "k", ""))
	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, v)
}

func TestMemoryKVStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKVStore()
	require.NoError(t, s.Close())

	_, _, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), ErrStoreClosed)
}

func TestMemoryKVStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryKVStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "k", "v")
		}()
		go func() {
			defer wg.Done()
			_, _, _ = s.Get(ctx, "k")
		}()
	}
	wg.Wait()

	v, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
}
