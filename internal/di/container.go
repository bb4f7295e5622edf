package di

import (
	"go.uber.org/dig"

	"github.com/mikey/ceknomor/internal/config"
	"github.com/mikey/ceknomor/internal/core"
	"github.com/mikey/ceknomor/internal/factory"
	"github.com/mikey/ceknomor/internal/logging"
	"github.com/mikey/ceknomor/internal/ports"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	if err := provideServices(container); err != nil {
		return nil, err
	}

	// Register frontend
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// provideServices registers everything below the frontend, shared by the
// server and the CLI
func provideServices(container *dig.Container) error {
	// Register factories
	if err := container.Provide(factory.NewStorageFactory); err != nil {
		return err
	}
	if err := container.Provide(factory.NewServiceFactory); err != nil {
		return err
	}

	// Register history slot and store
	if err := container.Provide(func(f *factory.StorageFactory) (ports.SlotStore, error) {
		return f.CreateSlotStore()
	}); err != nil {
		return err
	}
	if err := container.Provide(func(f *factory.StorageFactory, slot ports.SlotStore) *core.HistoryStore {
		return f.CreateHistoryStore(slot)
	}); err != nil {
		return err
	}

	// Register scan and share services
	if err := container.Provide(func(f *factory.ServiceFactory, history *core.HistoryStore) (*core.ScanService, error) {
		return f.CreateScanService(history)
	}); err != nil {
		return err
	}
	if err := container.Provide(func(f *factory.ServiceFactory) (*core.ShareService, error) {
		return f.CreateShareService()
	}); err != nil {
		return err
	}

	return nil
}
