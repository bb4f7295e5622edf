package config

import (
	"fmt"
	"strings"
	"time"
)

// ServerConfig represents the frontend configuration
type ServerConfig struct {
	Frontend      string
	ListenAddress string
	PublicURL     string
}

// ScanConfig represents the simulated lookup latency
type ScanConfig struct {
	MinDelay time.Duration
	MaxDelay time.Duration
}

// HistoryConfig represents where and how much history is kept
type HistoryConfig struct {
	Backend    string
	Key        string
	Capacity   int
	FileDir    string
	SQLitePath string
	MySQLDSN   string
}

// SMTPConfig represents the relay used for platform sharing
type SMTPConfig struct {
	Enabled  bool
	Address  string
	Username string
	Password string
	From     string
	To       []string
	Timeout  time.Duration
}

// ShareConfig represents the share configuration
type ShareConfig struct {
	SMTP SMTPConfig
}

// DisplayConfig represents how times are shown
type DisplayConfig struct {
	Timezone string
}

// GetServer returns the server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		Frontend:      c.GetString("server.frontend"),
		ListenAddress: c.GetString("server.listen_address"),
		PublicURL:     c.GetString("server.public_url"),
	}
}

// GetScan returns the scan configuration
func (c *Config) GetScan() (ScanConfig, error) {
	minDelay, err := c.GetDuration("scan.min_delay")
	if err != nil {
		return ScanConfig{}, fmt.Errorf("invalid scan min delay: %w", err)
	}
	maxDelay, err := c.GetDuration("scan.max_delay")
	if err != nil {
		return ScanConfig{}, fmt.Errorf("invalid scan max delay: %w", err)
	}
	if minDelay < 0 || maxDelay < minDelay {
		return ScanConfig{}, fmt.Errorf("invalid scan delay range: %s to %s", minDelay, maxDelay)
	}

	return ScanConfig{
		MinDelay: minDelay,
		MaxDelay: maxDelay,
	}, nil
}

// maxHistoryCapacity bounds history.capacity
const maxHistoryCapacity = 10

// GetHistory returns the history configuration. Capacities outside 1..10
// are clamped.
func (c *Config) GetHistory() HistoryConfig {
	capacity := c.GetInt("history.capacity")
	switch {
	case capacity < 1:
		capacity = 1
	case capacity > maxHistoryCapacity:
		capacity = maxHistoryCapacity
	}

	return HistoryConfig{
		Backend:    c.GetString("history.backend"),
		Key:        c.GetString("history.key"),
		Capacity:   capacity,
		FileDir:    c.GetString("history.file_dir"),
		SQLitePath: c.GetString("history.sqlite_path"),
		MySQLDSN:   c.GetString("history.mysql_dsn"),
	}
}

// GetShare returns the share configuration
func (c *Config) GetShare() (ShareConfig, error) {
	timeout, err := c.GetDuration("share.smtp.timeout")
	if err != nil {
		return ShareConfig{}, fmt.Errorf("invalid share smtp timeout: %w", err)
	}

	return ShareConfig{
		SMTP: SMTPConfig{
			Enabled:  c.GetBool("share.smtp.enabled"),
			Address:  c.GetString("share.smtp.address"),
			Username: c.GetString("share.smtp.username"),
			Password: c.GetString("share.smtp.password"),
			From:     c.GetString("share.smtp.from"),
			To:       splitRecipients(c.GetStringSlice("share.smtp.to")),
			Timeout:  timeout,
		},
	}, nil
}

// GetDisplay returns the display configuration
func (c *Config) GetDisplay() DisplayConfig {
	return DisplayConfig{
		Timezone: c.GetString("display.timezone"),
	}
}

// splitRecipients accepts both a YAML list and a comma separated env value
func splitRecipients(values []string) []string {
	var out []string
	for _, value := range values {
		for _, addr := range strings.Split(value, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}
