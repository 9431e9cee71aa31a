package inventoryapi

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/example/shop-services/modules/inventory"
)

// Module exposes the inventory domain over REST.
type Module struct {
	app             *fiber.App
	handlers        *Handlers
	inventoryModule *inventory.Module
	port            int
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new inventory API module.
func NewModule(port int) *Module {
	return &Module{port: port}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "inventoryapi"
}

// SetInventoryModule sets the inventory core module dependency. Must be
// called before Start.
func (m *Module) SetInventoryModule(im *inventory.Module) {
	m.inventoryModule = im
}

// Start builds the fiber app and serves it in a goroutine.
func (m *Module) Start(_ context.Context) error {
	if m.inventoryModule == nil {
		return fmt.Errorf("inventory module not set")
	}
	service := m.inventoryModule.GetService()
	if service == nil {
		return fmt.Errorf("inventory service not available")
	}

	m.app = fiber.New(fiber.Config{
		AppName:               "inventory-service",
		DisableStartupMessage: true,
	})
	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	m.handlers = NewHandlers(service)
	m.handlers.Register(m.app)

	go func() {
		addr := fmt.Sprintf(":%d", m.port)
		log.Info().Str("addr", addr).Msg("[inventoryapi] Starting HTTP server")
		if err := m.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("[inventoryapi] HTTP server error")
		}
	}()
	return nil
}

// Stop shuts down the HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Info().Msg("[inventoryapi] Shutting down HTTP server")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{"port": m.port},
	}
}

// GetApp returns the fiber app (for testing).
func (m *Module) GetApp() *fiber.App {
	return m.app
}
