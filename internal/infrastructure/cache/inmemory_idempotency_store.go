package cache

import (
	"context"
	"sync"
	"time"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
)

// entry represents a cached order id with expiration
type entry struct {
	orderID   int64
	expiresAt time.Time
}

// InMemoryIdempotencyStore maps remote order ids to local order ids using an
// in-memory map. This is suitable for single-instance deployments and testing.
type InMemoryIdempotencyStore struct {
	mu        sync.RWMutex
	entries   map[string]entry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryIdempotencyStore creates a new in-memory idempotency store
// It starts a background goroutine to clean up expired entries
func NewInMemoryIdempotencyStore(ttl time.Duration) *InMemoryIdempotencyStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	store := &InMemoryIdempotencyStore{
		entries:  make(map[string]entry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Get returns the cached local order id for a remote order id
func (s *InMemoryIdempotencyStore) Get(ctx context.Context, remoteOrderID string) (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[remoteOrderID]
	if !exists {
		return 0, false
	}
	if time.Now().After(e.expiresAt) {
		return 0, false
	}
	return e.orderID, true
}

// Set remembers the local order id for a remote order id
func (s *InMemoryIdempotencyStore) Set(ctx context.Context, remoteOrderID string, orderID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[remoteOrderID] = entry{
		orderID:   orderID,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Close stops the cleanup goroutine and releases resources
// Safe to call multiple times
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

// cleanupLoop periodically removes expired entries
func (s *InMemoryIdempotencyStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

// cleanup removes expired entries from the store
func (s *InMemoryIdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for remoteID, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, remoteID)
		}
	}
}

// Size returns the number of entries in the store (for testing/monitoring)
func (s *InMemoryIdempotencyStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Ensure InMemoryIdempotencyStore implements OrderIdempotencyStore
var _ appordertech.OrderIdempotencyStore = (*InMemoryIdempotencyStore)(nil)
