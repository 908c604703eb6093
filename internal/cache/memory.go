package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process TTL cache. Values are stored encoded so a hit
// hands out an independent copy.
type MemoryStore struct {
	cache *gocache.Cache
	ttl   time.Duration
}

// NewMemoryStore expires entries after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string, dst any) (bool, error) {
	v, found := s.cache.Get(key)
	if !found {
		cacheMisses.WithLabelValues("memory").Inc()
		return false, nil
	}
	b, ok := v.([]byte)
	if !ok || json.Unmarshal(b, dst) != nil {
		cacheMisses.WithLabelValues("memory").Inc()
		return false, nil
	}
	cacheHits.WithLabelValues("memory").Inc()
	return true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	b, err := encode(value)
	if err != nil {
		return err
	}
	s.cache.Set(key, b, s.ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.cache.Delete(key)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.cache.Flush()
	return nil
}

// Len reports the number of live entries.
func (s *MemoryStore) Len() int {
	return s.cache.ItemCount()
}
