package app

import (
	"github.com/spf13/cobra"

	"github.com/eventtix/eventtix/cmd/eventtix/cmd/auth"
	"github.com/eventtix/eventtix/cmd/eventtix/cmd/buy"
	"github.com/eventtix/eventtix/cmd/eventtix/cmd/events"
	"github.com/eventtix/eventtix/cmd/eventtix/cmd/favorites"
	"github.com/eventtix/eventtix/cmd/eventtix/cmd/tickets"
	"github.com/eventtix/eventtix/cmd/eventtix/cmd/version"
)

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(events.NewCommand(a))
	rootCmd.AddCommand(favorites.NewCommand(a))
	rootCmd.AddCommand(buy.NewCommand(a))
	rootCmd.AddCommand(tickets.NewCommand(a))

	// Account commands
	rootCmd.AddCommand(auth.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
