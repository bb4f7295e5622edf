package factory

import (
	"fmt"

	"github.com/mikey/ceknomor/internal/adapters/storage"
	"github.com/mikey/ceknomor/internal/config"
	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/ports"
	"go.uber.org/zap"
)

// StorageFactory creates history slot stores based on configuration
type StorageFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewStorageFactory creates a new storage factory
func NewStorageFactory(cfg *config.Config, logger *zap.Logger) *StorageFactory {
	return &StorageFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateSlotStore creates the slot backend named by history.backend
func (f *StorageFactory) CreateSlotStore() (ports.SlotStore, error) {
	history := f.cfg.GetHistory()

	f.logger.Debug("Opening history backend", zap.String("backend", history.Backend))

	switch history.Backend {
	case "memory":
		return storage.NewMemorySlot(f.logger), nil
	case "file":
		return storage.NewFileSlot(history.FileDir, f.logger)
	case "sqlite":
		return storage.NewSQLiteSlot(history.SQLitePath, f.logger)
	case "mysql":
		return storage.NewMySQLSlot(history.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported history backend: %s", history.Backend)
	}
}

// CreateHistoryStore creates the history store over slot
func (f *StorageFactory) CreateHistoryStore(slot ports.SlotStore) *core.HistoryStore {
	history := f.cfg.GetHistory()

	return core.NewHistoryStore(slot, f.logger, core.HistoryOptions{
		Key:      history.Key,
		Capacity: history.Capacity,
	})
}
