package store

import (
	"context"
	"sync"
)

// memoryBlobStore is a map-backed BlobStore used by tests and by hosts that
// opt out of durable storage. Safe for concurrent use.
type memoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string]string
}

// NewMemoryBlobStore returns an empty in-memory BlobStore.
func NewMemoryBlobStore() BlobStore {
	return &memoryBlobStore{blobs: make(map[string]string)}
}

func (s *memoryBlobStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.blobs[key]
	if !ok {
		return "", ErrBlobNotFound
	}
	return value, nil
}

func (s *memoryBlobStore) Set(ctx context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}

func (s *memoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

func (s *memoryBlobStore) DeleteMulti(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.blobs, key)
	}
	return nil
}
