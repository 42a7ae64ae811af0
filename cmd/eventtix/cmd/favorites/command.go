// Package favorites implements the favorites command group.
package favorites

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	eventtix "github.com/eventtix/eventtix"
	"github.com/eventtix/eventtix/internal/cmd/emoji"
	"github.com/eventtix/eventtix/internal/cmd/globals"
	"github.com/eventtix/eventtix/internal/cmd/notify"
	"github.com/eventtix/eventtix/internal/cmd/output"
	"github.com/eventtix/eventtix/internal/cmd/table"
	"github.com/eventtix/eventtix/pkg/errors"
)

// AppContext defines the interface that favorites commands need from the app.
type AppContext interface {
	Client(ctx context.Context) (eventtix.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
	Notices() []eventtix.Notice
}

// NewCommand creates the favorites command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites [subcommand]",
		GroupID: "core",
		Short:   "Manage favorited events",
		Long: `Favorites manages the locally persisted list of favorited events.

Toggling a favorite requires a signed-in account. Signed out, the toggle
is held and completed after the next successful sign-in.`,
		Example: `  eventtix favorites list        # List favorited events
  eventtix favorites toggle 3    # Favorite or unfavorite event 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newToggleCommand(app))

	return cmd
}

func newListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorited events in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			return formatter.Format(os.Stdout, table.EventsToTableData(client.Favorites(), false))
		},
	}
}

func newToggleCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <event-id>",
		Short: "Favorite or unfavorite an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("event-id", args[0], "must be a number")
			}

			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			toggleErr := client.ToggleFavorite(cmd.Context(), id)
			printNotices(cmd, app)
			if toggleErr != nil {
				return toggleErr
			}

			if _, pending := client.PendingAction(); pending {
				fmt.Fprintf(os.Stderr, "%s Sign in to favorite this event; it will be saved after you sign in.\n", emoji.Warning)
			}
			return nil
		},
	}
}

func printNotices(cmd *cobra.Command, app AppContext) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		flags = &globals.Flags{}
	}
	notify.NewPrinter(flags.Quiet).Print(app.Notices())
}
