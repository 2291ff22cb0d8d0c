package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryIdempotencyStore_GetSet(t *testing.T) {
	store := NewInMemoryIdempotencyStore(1 * time.Hour)
	defer store.Close()

	ctx := context.Background()

	t.Run("returns miss for unknown remote id", func(t *testing.T) {
		_, ok := store.Get(ctx, "unknown-order")
		assert.False(t, ok)
	})

	t.Run("returns stored order id", func(t *testing.T) {
		store.Set(ctx, "ord-1", 42)

		orderID, ok := store.Get(ctx, "ord-1")
		assert.True(t, ok)
		assert.Equal(t, int64(42), orderID)
	})

	t.Run("overwrites previous mapping", func(t *testing.T) {
		store.Set(ctx, "ord-2", 7)
		store.Set(ctx, "ord-2", 8)

		orderID, ok := store.Get(ctx, "ord-2")
		assert.True(t, ok)
		assert.Equal(t, int64(8), orderID)
	})
}

func TestInMemoryIdempotencyStore_Expiration(t *testing.T) {
	store := NewInMemoryIdempotencyStore(10 * time.Millisecond)
	defer store.Close()

	ctx := context.Background()
	store.Set(ctx, "ord-exp", 99)

	_, ok := store.Get(ctx, "ord-exp")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok = store.Get(ctx, "ord-exp")
	assert.False(t, ok, "expired entry should read as a miss")
}

func TestInMemoryIdempotencyStore_Cleanup(t *testing.T) {
	store := NewInMemoryIdempotencyStore(1 * time.Hour)
	defer store.Close()

	ctx := context.Background()

	shortLived := NewInMemoryIdempotencyStore(10 * time.Millisecond)
	defer shortLived.Close()

	shortLived.Set(ctx, "ord-a", 1)
	shortLived.Set(ctx, "ord-b", 2)
	assert.Equal(t, 2, shortLived.Size())

	time.Sleep(20 * time.Millisecond)
	shortLived.cleanup()

	assert.Equal(t, 0, shortLived.Size())
}

func TestInMemoryIdempotencyStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryIdempotencyStore(1 * time.Hour)
	defer store.Close()

	ctx := context.Background()
	const numGoroutines = 100

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			store.Set(ctx, "ord-concurrent", n)
			store.Get(ctx, "ord-concurrent")
		}(int64(i))
	}
	wg.Wait()

	_, ok := store.Get(ctx, "ord-concurrent")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Size())
}

func TestInMemoryIdempotencyStore_Close(t *testing.T) {
	store := NewInMemoryIdempotencyStore(1 * time.Hour)

	err := store.Close()
	assert.NoError(t, err)

	// Multiple closes should be safe
	err = store.Close()
	assert.NoError(t, err)
}
