package factory

import (
	"github.com/mikey/ceknomor/internal/adapters/share"
	"github.com/mikey/ceknomor/internal/config"
	"github.com/mikey/ceknomor/internal/core"
	"go.uber.org/zap"
)

// ServiceFactory creates the scan and share services from configuration
type ServiceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewServiceFactory creates a new service factory
func NewServiceFactory(cfg *config.Config, logger *zap.Logger) *ServiceFactory {
	return &ServiceFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateScanService creates the scan service recording into history
func (f *ServiceFactory) CreateScanService(history *core.HistoryStore) (*core.ScanService, error) {
	scan, err := f.cfg.GetScan()
	if err != nil {
		return nil, err
	}

	display, err := core.NewDisplay(f.cfg.GetDisplay().Timezone)
	if err != nil {
		return nil, err
	}

	return core.NewScanService(history, f.logger, core.ServiceOptions{
		Delay:   core.DelayPolicy{Min: scan.MinDelay, Max: scan.MaxDelay},
		Display: display,
	}), nil
}

// CreateShareService creates the share service, with the SMTP sharer when enabled
func (f *ServiceFactory) CreateShareService() (*core.ShareService, error) {
	cfg, err := f.cfg.GetShare()
	if err != nil {
		return nil, err
	}

	var sharer core.Sharer
	if cfg.SMTP.Enabled {
		sharer = share.NewSMTPSharer(share.SMTPConfig{
			Address:  cfg.SMTP.Address,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
			Timeout:  cfg.SMTP.Timeout,
		}, f.logger)
		f.logger.Debug("SMTP sharing enabled", zap.String("relay", cfg.SMTP.Address))
	}

	return core.NewShareService(sharer, f.cfg.GetServer().PublicURL, f.logger), nil
}
