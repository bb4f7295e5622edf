package core

import (
	"context"
)

// HistorySlot is a single named slot of local key-value storage
type HistorySlot interface {
	// Load returns the raw value stored under key, or ErrSlotNotFound
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key
	Save(ctx context.Context, key string, value []byte) error
}

// Sharer delegates a share to a platform capability
type Sharer interface {
	// Share delivers the request, or returns ErrShareUnavailable
	Share(ctx context.Context, req ShareRequest) error
}
