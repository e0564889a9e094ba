package notelite

// Command represents a discrete application operation with its specific
// configuration.
//
// Each command implementation carries the options for one operation, while
// [Parse] handles the routing from command-line arguments and [Main]
// dispatches to the matching method on [App]. Adding an operation means
// adding a command type; existing commands stay untouched.
type Command interface {
	// Name returns the command identifier used for routing. It matches the
	// CLI subcommand name.
	Name() string
}

// MigrateCommand runs the schema migration.
//
// The migration compares the declared model metadata against the live
// database schema and applies incremental DDL through GORM's AutoMigrate.
// It only creates missing schema elements and never removes data, so it is
// safe to run repeatedly. Run it before `notelite run` on every deployment;
// the process exits non-zero when the database is unreachable or a DDL
// statement fails.
type MigrateCommand struct {
	// All configuration comes from App.Config.
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

// RunCommand starts the HTTP server.
//
// The server exposes the note CRUD endpoints and the health check, and
// shuts down gracefully when the context passed to [Main] is cancelled.
type RunCommand struct {
	// All configuration comes from App.Config.
}

func (c *RunCommand) Name() string {
	return "run"
}
