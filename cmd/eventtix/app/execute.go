package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/eventtix/eventtix/internal/cmd/globals"
)

// Execute runs the eventtix CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "eventtix",
		Short:   "Event ticket marketplace CLI",
		Version: a.version,
		Long: `EventTix is a client for the EventTix event ticket marketplace.

Browse the event catalogue, filter by genre, search by artist or venue,
keep a list of favorites, and buy tickets. Buying and favoriting require
a signed-in account; an attempt while signed out is held and completed
automatically after the next successful sign-in.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "account",
		Title: "Account Commands:",
	})

	// Shared flags (--output/-o, --quiet, --verbose, --no-color) are
	// registered by globals so subcommands can read them back uniformly.
	globals.AddFlags(rootCmd)
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.eventtix.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("eventtix {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(flags.Verbose, flags.Quiet, flags.NoColor, flags.Output, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
