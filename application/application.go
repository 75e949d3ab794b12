package application

import (
	"fmt"

	"nachna/config"
	"nachna/shared/common/eventbus"
	"nachna/shared/common/logger"
	"nachna/shared/common/module"
	"nachna/shared/common/registry"
)

type Application struct {
	config     config.Config
	httpServer HTTPServer
	reg        registry.ServiceRegistry
	eventBus   eventbus.EventBus
}

func New(config config.Config) *Application {
	return &Application{
		config:     config,
		httpServer: newHTTPServer(config),
		reg:        registry.NewServiceRegistry(),
		eventBus:   eventbus.NewInMemoryEventBus(),
	}
}

// RegisterModules ทำ 3 อย่างให้แต่ละโมดูลตามลำดับที่ส่งเข้ามา
// 1. Init โมดูล (resolve dependency จาก registry ได้)
// 2. เอา service ที่โมดูล export ใส่ registry ให้โมดูลถัดไปใช้
// 3. ผูก route ของโมดูลกับ base path ตาม API version
func (app *Application) RegisterModules(modules ...module.Module) error {
	for _, m := range modules {
		if err := m.Init(app.reg, app.eventBus); err != nil {
			return fmt.Errorf("failed to init module %T: %w", m, err)
		}

		if provider, ok := m.(module.ServiceProvider); ok {
			for _, svc := range provider.Services() {
				app.reg.Register(svc.Key, svc.Value)
			}
		}

		m.RegisterRoutes(app.httpServer.Group(fmt.Sprintf("/api/%s", m.APIVersion())))
	}

	return nil
}

func (app *Application) Run() error {
	app.httpServer.Start()

	return nil
}

func (app *Application) Shutdown() error {
	// Gracefully close fiber server
	logger.Log().Info("Shutting down server")
	if err := app.httpServer.Shutdown(); err != nil {
		logger.Log().Fatal(fmt.Sprintf("Error shutting down server: %v", err))
	}
	logger.Log().Info("Server stopped")

	return nil
}
