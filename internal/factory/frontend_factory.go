package factory

import (
	"fmt"
	"os"

	"github.com/mikey/ceknomor/internal/adapters/frontend"
	"github.com/mikey/ceknomor/internal/config"
	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/ports"
	"go.uber.org/zap"
)

// FrontendFactory creates frontends based on configuration
type FrontendFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	scans  *core.ScanService
	shares *core.ShareService
}

// NewFrontendFactory creates a new frontend factory
func NewFrontendFactory(cfg *config.Config, logger *zap.Logger, scans *core.ScanService, shares *core.ShareService) *FrontendFactory {
	return &FrontendFactory{
		cfg:    cfg,
		logger: logger,
		scans:  scans,
		shares: shares,
	}
}

// CreateFrontend creates the frontend named by server.frontend
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	server := f.cfg.GetServer()

	switch server.Frontend {
	case "http":
		return frontend.NewHTTPFrontend(f.scans, f.shares, f.logger, server.ListenAddress), nil
	case "console":
		return frontend.NewConsoleFrontend(f.scans, f.shares, f.logger, os.Stdin, os.Stdout), nil
	default:
		return nil, fmt.Errorf("unsupported frontend: %s", server.Frontend)
	}
}
