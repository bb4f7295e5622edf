package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// AppName names the config and data directories
const AppName = "ceknomor"

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	return NewWithFile("")
}

// NewWithFile creates a configuration instance reading path instead of
// searching the default locations. An empty path searches.
func NewWithFile(path string) (*Config, error) {
	v := NewEmptyViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/" + AppName + "/")
		v.AddConfigPath("$HOME/." + AppName)
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("CEKNOMOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// DataDir is where the history is kept unless configured otherwise
func DataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.frontend", "http")
	v.SetDefault("server.listen_address", "127.0.0.1:8080")
	v.SetDefault("server.public_url", "http://localhost:8080/")

	// Scan defaults
	v.SetDefault("scan.min_delay", "2s")
	v.SetDefault("scan.max_delay", "3s")

	// History defaults
	v.SetDefault("history.backend", "file")
	v.SetDefault("history.key", "scanHistory")
	v.SetDefault("history.capacity", 10)
	v.SetDefault("history.file_dir", DataDir())
	v.SetDefault("history.sqlite_path", filepath.Join(DataDir(), AppName+".db"))
	v.SetDefault("history.mysql_dsn", "user:password@tcp(localhost:3306)/ceknomor")

	// Share defaults
	v.SetDefault("share.smtp.enabled", false)
	v.SetDefault("share.smtp.address", "localhost:25")
	v.SetDefault("share.smtp.username", "")
	v.SetDefault("share.smtp.password", "")
	v.SetDefault("share.smtp.from", "ceknomor@localhost")
	v.SetDefault("share.smtp.to", []string{})
	v.SetDefault("share.smtp.timeout", "10s")

	// Display defaults
	v.SetDefault("display.timezone", "Asia/Jakarta")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// Set overrides a value, used for command line flags
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
