package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

// ErrInvalidKey is returned for keys that cannot be used as a file name
var ErrInvalidKey = errors.New("invalid slot key")

var validKey = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9_.-]*$`)

// FileSlot stores each slot as <dir>/<key>.json
type FileSlot struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewFileSlot creates a file slot store rooted at dir, creating it if needed
func NewFileSlot(dir string, logger *zap.Logger) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create slot directory: %w", err)
	}

	return &FileSlot{
		dir:    dir,
		logger: logger,
	}, nil
}

// Load reads the file of key
func (s *FileSlot) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, core.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", key, err)
	}

	return data, nil
}

// Save writes value to a temporary file and renames it over the file of key
func (s *FileSlot) Save(ctx context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}

	s.logger.Debug("Saved slot", zap.String("key", key), zap.String("path", path))
	return nil
}

// Stop is a no-op, files are closed after every write
func (s *FileSlot) Stop() {}

func (s *FileSlot) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
