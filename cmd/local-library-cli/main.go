// Package main is the entry point for the local-library-cli application.
// It initializes the root command and registers the administrative
// sub-commands (migrate, seed, create-user), then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/mikescor/local-library/cmd/local-library-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "local-library-cli",
		Short: "Library catalog administration CLI tool",
		Long: `local-library-cli is a command-line tool for administering the
library catalog. It migrates the database schema, seeds sample catalog
data and creates user accounts, optionally with the librarian
permission set.

The database connection is read from the YAML configuration referenced
by the CONFIG_PATH environment variable or the --config flag.`,
	}

	if err := commands.InitAdminCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize admin commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
