package notelite

import (
	"flag"
	"fmt"

	"github.com/notelite/notelite/pkg/config"
)

// Parse parses command line arguments and returns the command to execute,
// the application configuration, and any error that occurred.
//
// Flags are shared across commands; the subcommand (run or migrate) selects
// the operation. Configuration is layered: defaults, then the optional
// settings file named by -config, then the environment variables
// DATABASE_URL, ENVIRONMENT, LOG_LEVEL and PORT, then flags.
func Parse(args []string) (Command, *Config, error) {
	flagSet := flag.NewFlagSet("notelite", flag.ContinueOnError)

	var (
		configPath = flagSet.String("config", "", "Path to an optional YAML settings file")
		port       = flagSet.String("port", "", "Server port (overrides PORT)")
		readOnly   = flagSet.Bool("read-only", false, "Start in read-only maintenance mode")
	)

	if err := flagSet.Parse(args); err != nil {
		return nil, nil, err
	}

	remainingArgs := flagSet.Args()
	if len(remainingArgs) == 0 {
		return nil, nil, fmt.Errorf(`subcommand required

Usage: notelite [flags] <command>

Commands:
  run       Start the notelite server
  migrate   Apply database schema migrations

Examples:
  notelite migrate                                 # Apply pending schema changes
  notelite run                                     # Serve on $PORT (default 8080)
  notelite -port=8090 run                          # Serve on a custom port
  notelite -read-only run                          # Reject writes during maintenance
  DATABASE_URL=postgres://localhost/notes notelite run`)
	}

	var cmd Command
	switch remainingArgs[0] {
	case "run":
		cmd = &RunCommand{}
	case "migrate":
		cmd = &MigrateCommand{}
	default:
		return nil, nil, fmt.Errorf("unknown command: %s\n\nValid commands: run, migrate", remainingArgs[0])
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}

	appConfig := &Config{
		DatabaseURL: settings.DatabaseURL,
		Environment: settings.Environment,
		LogLevel:    settings.LogLevel,
		ServerPort:  settings.Port,
		ReadOnly:    *readOnly,
	}
	if *port != "" {
		appConfig.ServerPort = *port
	}

	return cmd, appConfig, nil
}
