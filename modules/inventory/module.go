package inventory

import (
	"context"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module provides the inventory domain via GORM + SQLite.
type Module struct {
	db      *gorm.DB
	repo    *Repository
	service *Service
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new inventory module backed by the SQLite
// database at dbPath.
func NewModule(dbPath string) *Module {
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "inventory"
}

// Start opens the database, runs migrations and builds the domain
// service.
func (m *Module) Start(_ context.Context) error {
	log.Info().Str("path", m.dbPath).Msg("[inventory] Connecting to SQLite database")

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := m.db.AutoMigrate(&InventoryItem{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.repo = NewRepository(m.db)
	m.service = NewService(m.repo)

	log.Info().Msg("[inventory] Module started")
	return nil
}

// Stop closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Info().Msg("[inventory] Database connection closed")
	return nil
}

// Health performs a health check on the inventory module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{Healthy: false, Message: "database not initialized"}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get sql.DB: %v", err)}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}

// GetService returns the inventory service.
func (m *Module) GetService() *Service {
	return m.service
}
