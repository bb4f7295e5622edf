package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	server := cfg.GetServer()
	assert.Equal(t, "http", server.Frontend)
	assert.Equal(t, "127.0.0.1:8080", server.ListenAddress)
	assert.Equal(t, "http://localhost:8080/", server.PublicURL)

	scan, err := cfg.GetScan()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, scan.MinDelay)
	assert.Equal(t, 3*time.Second, scan.MaxDelay)

	history := cfg.GetHistory()
	assert.Equal(t, "file", history.Backend)
	assert.Equal(t, "scanHistory", history.Key)
	assert.Equal(t, 10, history.Capacity)
	assert.Equal(t, DataDir(), history.FileDir)
	assert.Equal(t, filepath.Join(DataDir(), "ceknomor.db"), history.SQLitePath)

	share, err := cfg.GetShare()
	require.NoError(t, err)
	assert.False(t, share.SMTP.Enabled)
	assert.Equal(t, "localhost:25", share.SMTP.Address)
	assert.Empty(t, share.SMTP.To)
	assert.Equal(t, 10*time.Second, share.SMTP.Timeout)

	assert.Equal(t, "Asia/Jakarta", cfg.GetDisplay().Timezone)
	assert.Equal(t, "info", cfg.GetString("logging.level"))
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  frontend: console
history:
  backend: sqlite
  capacity: 5
scan:
  min_delay: 0s
  max_delay: 0s
share:
  smtp:
    enabled: true
    to:
      - a@example.com
      - b@example.com
`), 0o644))

	cfg, err := NewWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.GetServer().Frontend)
	assert.Equal(t, "sqlite", cfg.GetHistory().Backend)
	assert.Equal(t, 5, cfg.GetHistory().Capacity)
	// untouched keys keep their defaults
	assert.Equal(t, "scanHistory", cfg.GetHistory().Key)

	scan, err := cfg.GetScan()
	require.NoError(t, err)
	assert.Zero(t, scan.MaxDelay)

	share, err := cfg.GetShare()
	require.NoError(t, err)
	assert.True(t, share.SMTP.Enabled)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, share.SMTP.To)
}

func TestNewWithFile_Missing(t *testing.T) {
	_, err := NewWithFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CEKNOMOR_HISTORY_BACKEND", "memory")
	t.Setenv("CEKNOMOR_SHARE_SMTP_TO", "a@example.com, b@example.com")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := NewWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.GetHistory().Backend)
	assert.Equal(t, "debug", cfg.GetString("logging.level"))

	share, err := cfg.GetShare()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, share.SMTP.To)
}

func TestGetScan_InvalidRange(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())
	cfg.Set("scan.min_delay", "5s")
	cfg.Set("scan.max_delay", "1s")

	_, err := cfg.GetScan()
	assert.Error(t, err)

	cfg.Set("scan.min_delay", "soon")
	_, err = cfg.GetScan()
	assert.Error(t, err)
}

func TestGetHistory_ClampsCapacity(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	for value, want := range map[int]int{50: 10, 10: 10, 3: 3, 0: 1, -2: 1} {
		cfg.Set("history.capacity", value)
		assert.Equal(t, want, cfg.GetHistory().Capacity, "capacity %d", value)
	}
}
