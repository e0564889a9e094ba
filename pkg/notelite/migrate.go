package notelite

import (
	"context"
	"fmt"
)

// Migrate brings the database schema up to date with the declared models.
//
// The heavy lifting is delegated to the store implementation (GORM's
// AutoMigrate); this method only adds logging and error context. It is the
// handler for the `notelite migrate` subcommand and is meant to run as a
// separate process before the server starts.
func (a *App) Migrate(ctx context.Context, cmd *MigrateCommand) error {
	a.log.Info().Msg("applying schema migrations")
	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}
	a.log.Info().Msg("schema is up to date")
	return nil
}
