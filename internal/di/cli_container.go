package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/ceknomor/internal/config"
	"github.com/mikey/ceknomor/internal/logging"
)

// CLIFlags contains the global command line flags of the CLI application
type CLIFlags struct {
	ConfigFile string
	Verbose    bool
	JSONLog    bool
	Backend    string
	NoDelay    bool
	Format     string
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(flags *CLIFlags) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags) (*zap.Logger, error) {
		return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
	}); err != nil {
		return nil, err
	}

	// Register configuration, flags override the file
	if err := container.Provide(func(flags *CLIFlags, logger *zap.Logger) (*config.Config, error) {
		cfg, err := config.NewWithFile(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		if used := cfg.GetViper().ConfigFileUsed(); used != "" {
			logger.Debug("Loaded configuration from file", zap.String("file", used))
		}
		applyFlags(cfg, flags)
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	if err := provideServices(container); err != nil {
		return nil, err
	}

	return container, nil
}

// applyFlags copies the flags that were set onto cfg
func applyFlags(cfg *config.Config, flags *CLIFlags) {
	if flags.Backend != "" {
		cfg.Set("history.backend", flags.Backend)
	}
	if flags.NoDelay {
		cfg.Set("scan.min_delay", "0s")
		cfg.Set("scan.max_delay", "0s")
	}
}
