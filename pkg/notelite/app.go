package notelite

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/notelite/notelite/pkg/logger"
	"github.com/notelite/notelite/pkg/store"
	"github.com/notelite/notelite/pkg/store/sqlstore"
)

// Config holds application configuration resolved from settings and flags.
type Config struct {
	// DatabaseURL selects the backing database: a postgres:// DSN or a
	// SQLite file path / sqlite:// URL.
	DatabaseURL string

	// Environment names the deployment environment (development, staging,
	// production). It is reported by the health endpoint and attached to
	// every log line.
	Environment string

	// LogLevel is the minimum zerolog level (trace, debug, info, warn, error).
	LogLevel string

	// ServerPort is the TCP port the HTTP server binds to.
	ServerPort string

	// ReadOnly starts the application in read-only maintenance mode: all
	// write operations are rejected until the mode is cleared.
	ReadOnly bool
}

// App holds the application state shared by the HTTP handlers.
type App struct {
	store  store.Store
	config *Config
	log    zerolog.Logger

	// readOnly is toggled at runtime and read by the store wrapper from
	// request goroutines, so access goes through atomics.
	readOnly atomic.Bool
}

// New creates the application: builds the logger, opens the database
// connection, and wraps the store with read-only protection.
func New(config *Config) (*App, error) {
	log, err := logger.New().WithLevel(config.LogLevel).Make()
	if err != nil {
		return nil, err
	}
	log = log.With().Str("environment", config.Environment).Logger()

	dbStore, err := sqlstore.NewStore(config.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	log.Info().Str("database_url", config.DatabaseURL).Msg("connected to database")

	app := &App{
		config: config,
		log:    log,
	}
	app.readOnly.Store(config.ReadOnly)
	app.store = store.NewReadOnlyStore(dbStore, app.IsReadOnly)

	return app, nil
}

// Close closes the application and its resources.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// Store returns the underlying store (useful for testing).
func (a *App) Store() store.Store {
	return a.store
}

// SetReadOnly toggles read-only maintenance mode at runtime. While active,
// Create, Update and Delete are rejected at the store wrapper level and the
// API answers with 503; reads keep working.
func (a *App) SetReadOnly(readOnly bool) {
	a.readOnly.Store(readOnly)
	a.log.Info().Bool("read_only", readOnly).Msg("read-only mode changed")
}

// IsReadOnly reports whether the application is in read-only mode. It is
// checked by the store wrapper on every write, so it must stay cheap.
func (a *App) IsReadOnly() bool {
	return a.readOnly.Load()
}
