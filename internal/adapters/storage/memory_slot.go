package storage

import (
	"context"
	"sync"

	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

// MemorySlot is an in-memory implementation of the HistorySlot interface
type MemorySlot struct {
	values map[string][]byte
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewMemorySlot creates a new in-memory slot store
func NewMemorySlot(logger *zap.Logger) *MemorySlot {
	return &MemorySlot{
		values: make(map[string][]byte),
		logger: logger,
	}
}

// Load returns the value stored under key
func (s *MemorySlot) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, core.ErrSlotNotFound
	}

	return append([]byte(nil), value...), nil
}

// Save replaces the value stored under key
func (s *MemorySlot) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	s.logger.Debug("Saved slot", zap.String("key", key), zap.Int("bytes", len(value)))
	return nil
}

// Stop releases nothing; the values live as long as the process
func (s *MemorySlot) Stop() {}
