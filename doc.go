// Package notelite is a minimal CRUD web service for note records.
//
// The service exposes a JSON REST API over a single `note` table
// (id, text, is_completed) with create, list, get, update and delete
// operations plus a health check. Persistence goes through GORM against a
// file-based SQLite database by default, or PostgreSQL when DATABASE_URL
// carries a postgres:// DSN. Schema changes are applied by a separate
// migrate subcommand that runs before the server starts.
//
// The repository layout:
//
//   - cmd/notelite: the binary entry point
//   - pkg/notelite: command parsing, application wiring, HTTP handlers
//   - pkg/models: the note entity and request schemas
//   - pkg/store: persistence interface and read-only wrapper
//   - pkg/store/sqlstore: GORM store with driver selection
//   - pkg/config: environment-driven settings loader
//   - pkg/logger: zerolog construction
//   - pkg/client: typed HTTP client for the API
package notelite
