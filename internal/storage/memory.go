package storage

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/internal/logger"
)

// MemStore is an in-memory Store used in tests and as a scratch backend.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
	log  *zap.Logger
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]json.RawMessage), log: logger.L()}
}

func (s *MemStore) Read(_ context.Context, key string, dest any) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Error("[Storage] stored value is not valid JSON", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *MemStore) Write(_ context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("[Storage] marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	s.mu.Lock()
	s.data[key] = data
	s.mu.Unlock()
}

// Corrupt overwrites a key with non-JSON bytes. Test helper for exercising
// the default-on-failure read path.
func (s *MemStore) Corrupt(key string) {
	s.mu.Lock()
	s.data[key] = json.RawMessage("{not json")
	s.mu.Unlock()
}
