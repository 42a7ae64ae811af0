// Package events implements the events command group: browsing, filtering
// and searching the catalogue.
package events

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	eventtix "github.com/eventtix/eventtix"
)

// AppContext defines the interface that events commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Client(ctx context.Context) (eventtix.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
	Notices() []eventtix.Notice
}

// NewCommand creates the events command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "events [subcommand]",
		GroupID: "core",
		Short:   "Browse the event catalogue",
		Long: `Events displays the marketplace event catalogue.

Available subcommands:
  list      - All events, with optional genre filter and search
  show      - Details and ticket tiers for one event
  featured  - The featured event`,
		Example: `  eventtix events list                     # List all events
  eventtix events list --genre rock        # Filter by genre
  eventtix events list --search kutumba    # Search artist, venue, genre
  eventtix events show 3                   # Show one event with tiers
  eventtix events featured                 # Show the featured event`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(NewListCommand(app))
	cmd.AddCommand(NewShowCommand(app))
	cmd.AddCommand(NewFeaturedCommand(app))

	return cmd
}
