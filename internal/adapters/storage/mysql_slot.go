package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

// MySQLSlot is a MySQL implementation of the HistorySlot interface
type MySQLSlot struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLSlot connects to dsn and creates the slot table
func NewMySQLSlot(dsn string, logger *zap.Logger) (*MySQLSlot, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_slots (
			` + "`key`" + ` VARCHAR(191) PRIMARY KEY,
			value MEDIUMTEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLSlot{
		db:     db,
		logger: logger,
	}, nil
}

// Load returns the value stored under key
func (s *MySQLSlot) Load(ctx context.Context, key string) ([]byte, error) {
	var value string

	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_slots WHERE `key` = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to query slot: %w", err)
	}

	return []byte(value), nil
}

// Save replaces the value stored under key
func (s *MySQLSlot) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_slots (`+"`key`"+`, value)
		VALUES (?, ?)
		ON DUPLICATE KEY UPDATE
			value = VALUES(value)
	`, key, string(value))

	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}

	return nil
}

// Stop closes the database connection
func (s *MySQLSlot) Stop() {
	if err := s.db.Close(); err != nil {
		s.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
