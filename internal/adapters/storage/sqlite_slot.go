package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

// SQLiteSlot is a SQLite implementation of the HistorySlot interface
type SQLiteSlot struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteSlot opens the database at dbPath and creates the slot table
func NewSQLiteSlot(dbPath string, logger *zap.Logger) (*SQLiteSlot, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_slots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteSlot{
		db:     db,
		logger: logger,
	}, nil
}

// Load returns the value stored under key
func (s *SQLiteSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var value string

	err := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM kv_slots
		WHERE key = ?
	`, key).Scan(&value)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}

	return []byte(value), nil
}

// Save replaces the value stored under key
func (s *SQLiteSlot) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO kv_slots (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, string(value), time.Now().UTC().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

// Stop closes the database connection
func (s *SQLiteSlot) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
