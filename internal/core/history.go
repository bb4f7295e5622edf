package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultHistoryKey is the slot the history is stored under
	DefaultHistoryKey = "scanHistory"
	// DefaultHistoryCapacity is the number of entries kept, also the upper bound
	DefaultHistoryCapacity = 10
)

var errMalformedHistory = errors.New("malformed scan history")

// HistoryOptions configures a HistoryStore
type HistoryOptions struct {
	Key      string
	Capacity int
	Now      func() time.Time
}

// HistoryStore owns the bounded, newest-first scan history
type HistoryStore struct {
	slot     HistorySlot
	logger   *zap.Logger
	key      string
	capacity int
	now      func() time.Time

	mu      sync.RWMutex
	entries []HistoryEntry
	loaded  bool
	lastID  int64
}

// NewHistoryStore creates a history store backed by slot
func NewHistoryStore(slot HistorySlot, logger *zap.Logger, opts HistoryOptions) *HistoryStore {
	if opts.Key == "" {
		opts.Key = DefaultHistoryKey
	}
	if opts.Capacity <= 0 || opts.Capacity > DefaultHistoryCapacity {
		opts.Capacity = DefaultHistoryCapacity
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &HistoryStore{
		slot:     slot,
		logger:   logger,
		key:      opts.Key,
		capacity: opts.Capacity,
		now:      opts.Now,
	}
}

// LoadOrSeed loads the persisted history on first use, seeding it when empty
func (h *HistoryStore) LoadOrSeed(ctx context.Context) []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.loadLocked(ctx)
	return h.snapshotLocked()
}

// Append inserts entry at the head and persists the truncated history.
// The in-memory history is updated even when persisting fails.
func (h *HistoryStore) Append(ctx context.Context, entry HistoryEntry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.loadLocked(ctx)

	entries := make([]HistoryEntry, 0, len(h.entries)+1)
	entries = append(entries, entry)
	entries = append(entries, h.entries...)
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}
	h.entries = entries

	if entry.ID > h.lastID {
		h.lastID = entry.ID
	}

	return h.persistLocked(ctx)
}

// FindByID looks up an entry of the loaded history
func (h *HistoryStore) FindByID(id int64) (HistoryEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, entry := range h.entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return HistoryEntry{}, false
}

// Entries returns a copy of the current history
func (h *HistoryStore) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.snapshotLocked()
}

// NextID hands out a unique id, the creation time in milliseconds unless
// that would repeat or go behind an id already issued
func (h *HistoryStore) NextID(ctx context.Context) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.loadLocked(ctx)

	id := h.now().UnixMilli()
	if id <= h.lastID {
		id = h.lastID + 1
	}
	h.lastID = id
	return id
}

// loadLocked reads the slot once. Absent, empty, unreadable and malformed
// data all fall back to the seed entries.
func (h *HistoryStore) loadLocked(ctx context.Context) {
	if h.loaded {
		return
	}
	h.loaded = true

	entries, err := h.read(ctx)
	switch {
	case err == nil && len(entries) > 0:
		h.setEntriesLocked(entries)
		h.logger.Debug("Loaded scan history", zap.String("key", h.key), zap.Int("entries", len(entries)))
		return
	case err == nil:
		h.logger.Debug("Scan history is empty, seeding", zap.String("key", h.key))
	case errors.Is(err, ErrSlotNotFound):
		h.logger.Debug("No scan history stored, seeding", zap.String("key", h.key))
	case errors.Is(err, errMalformedHistory):
		h.logger.Warn("Discarding malformed scan history", zap.String("key", h.key), zap.Error(err))
	default:
		// Never overwrite a slot that could not be read.
		h.logger.Warn("Failed to load scan history, using seed in memory", zap.String("key", h.key), zap.Error(err))
		h.setEntriesLocked(seedEntries(h.now()))
		return
	}

	h.setEntriesLocked(seedEntries(h.now()))
	if err := h.persistLocked(ctx); err != nil {
		h.logger.Warn("Keeping seeded history in memory only", zap.Error(err))
	}
}

func (h *HistoryStore) read(ctx context.Context) ([]HistoryEntry, error) {
	data, err := h.slot.Load(ctx, h.key)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var entries []HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedHistory, err)
	}
	if err := validateEntries(entries); err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedHistory, err)
	}
	return entries, nil
}

// validateEntries rejects stored entries that could not have been recorded by a scan
func validateEntries(entries []HistoryEntry) error {
	seen := make(map[int64]struct{}, len(entries))
	for i, entry := range entries {
		if entry.ID == 0 {
			return fmt.Errorf("entry %d: missing id", i)
		}
		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("entry %d: duplicate id %d", i, entry.ID)
		}
		seen[entry.ID] = struct{}{}

		digits, err := ParsePhoneDigits(string(entry.Number))
		if err != nil || digits != entry.Number {
			return fmt.Errorf("entry %d: invalid number %q", i, entry.Number)
		}
		if _, err := ParseRiskLevel(string(entry.Risk)); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return nil
}

func (h *HistoryStore) setEntriesLocked(entries []HistoryEntry) {
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}
	h.entries = entries
	for _, entry := range entries {
		if entry.ID > h.lastID {
			h.lastID = entry.ID
		}
	}
}

func (h *HistoryStore) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(h.entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := h.slot.Save(ctx, h.key, data); err != nil {
		h.logger.Warn("Failed to persist scan history",
			zap.String("key", h.key),
			zap.Int("entries", len(h.entries)),
			zap.Error(err))
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (h *HistoryStore) snapshotLocked() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// seedEntries returns the demo history used when nothing is stored
func seedEntries(now time.Time) []HistoryEntry {
	now = now.UTC().Truncate(time.Millisecond)
	return []HistoryEntry{
		{
			ID:          1,
			Number:      "08123456789",
			Formatted:   "0812-3456-789",
			Risk:        RiskLow,
			CreatedAt:   now.Add(-24 * time.Hour),
			TimeDisplay: "10:30",
			DateDisplay: msg(keySeedYesterday),
		},
		{
			ID:          2,
			Number:      "085711223344",
			Formatted:   "0857-1122-3344",
			Risk:        RiskMedium,
			CreatedAt:   now.Add(-48 * time.Hour),
			TimeDisplay: "14:45",
			DateDisplay: msg(keySeedTwoDays),
		},
	}
}
