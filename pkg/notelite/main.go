package notelite

import (
	"context"
	"fmt"
)

// Main is the entry point for the notelite application.
//
// It parses args, creates the application, and executes the selected
// command. Tests can call it directly with a cancellable context instead of
// building the binary; cancellation shuts the server down gracefully.
//
// # Command line usage
//
//	notelite migrate        # apply schema migrations, then exit
//	notelite run            # start the HTTP server
//
// # Environment variables
//
//	DATABASE_URL  - database location (default: notes.db, a SQLite file;
//	                postgres:// DSNs switch the driver)
//	ENVIRONMENT   - deployment environment name (default: development)
//	LOG_LEVEL     - minimum log level (default: info)
//	PORT          - HTTP listen port (default: 8080)
func Main(ctx context.Context, args []string) error {
	cmd, config, err := Parse(args)
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	app, err := New(config)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer app.Close()

	switch c := cmd.(type) {
	case *MigrateCommand:
		if err := app.Migrate(ctx, c); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	case *RunCommand:
		if err := app.Run(ctx, c); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	default:
		return fmt.Errorf("unknown command type: %T", cmd)
	}

	return nil
}
