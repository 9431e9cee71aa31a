package productapi

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/example/shop-services/modules/product"
)

// Module exposes the product catalog over REST.
type Module struct {
	app           *fiber.App
	handlers      *Handlers
	productModule *product.Module
	port          int
	allowOrigins  string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new product API module. allowOrigins configures
// CORS for the storefront frontend.
func NewModule(port int, allowOrigins string) *Module {
	return &Module{port: port, allowOrigins: allowOrigins}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "productapi"
}

// SetProductModule sets the product core module dependency. Must be
// called before Start.
func (m *Module) SetProductModule(pm *product.Module) {
	m.productModule = pm
}

// Start builds the fiber app and serves it in a goroutine.
func (m *Module) Start(_ context.Context) error {
	if m.productModule == nil {
		return fmt.Errorf("product module not set")
	}
	service := m.productModule.GetService()
	if service == nil {
		return fmt.Errorf("product service not available")
	}

	m.app = fiber.New(fiber.Config{
		AppName:               "product-service",
		DisableStartupMessage: true,
	})
	m.app.Use(recover.New())
	m.app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	m.app.Use(cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
	}))

	m.handlers = NewHandlers(service)
	m.handlers.Register(m.app)

	go func() {
		addr := fmt.Sprintf(":%d", m.port)
		log.Info().Str("addr", addr).Msg("[productapi] Starting HTTP server")
		if err := m.app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("[productapi] HTTP server error")
		}
	}()
	return nil
}

// Stop shuts down the HTTP server.
func (m *Module) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Info().Msg("[productapi] Shutting down HTTP server")
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
