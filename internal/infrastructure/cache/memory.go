package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Pravhesh/GrievAI/internal/domain/entity"
)

// MemoryStore is an in-process Store bounded by entry count and TTL.
// Eviction is LRU once the capacity is reached; expired entries behave
// as absent even before they are swept.
type MemoryStore struct {
	lru *expirable.LRU[string, entity.Classification]
}

// NewMemoryStore creates a memory store holding at most size entries,
// each valid for ttl after insertion.
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = 1024
	}
	return &MemoryStore{
		lru: expirable.NewLRU[string, entity.Classification](size, nil, ttl),
	}
}

// Get returns the stored classification if present and not expired.
func (s *MemoryStore) Get(_ context.Context, key string) (entity.Classification, bool, error) {
	v, ok := s.lru.Get(key)
	return v, ok, nil
}

// Set inserts or overwrites the entry, resetting its expiry clock.
func (s *MemoryStore) Set(_ context.Context, key string, value entity.Classification) error {
	s.lru.Add(key, value)
	return nil
}

// Len returns the current number of live entries.
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}
