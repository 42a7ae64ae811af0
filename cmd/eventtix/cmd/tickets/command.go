// Package tickets implements the owned-tickets command.
package tickets

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	eventtix "github.com/eventtix/eventtix"
	"github.com/eventtix/eventtix/internal/cmd/output"
	"github.com/eventtix/eventtix/internal/cmd/table"
)

// AppContext defines the interface that the tickets command needs from the app.
type AppContext interface {
	Client(ctx context.Context) (eventtix.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the tickets command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		GroupID: "core",
		Short:   "List your purchased tickets",
		Long:    `Tickets lists the signed-in user's purchased tickets with their status.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			owned, err := client.Tickets(cmd.Context())
			if err != nil {
				return err
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			return formatter.Format(os.Stdout, table.TicketsToTableData(owned))
		},
	}

	return cmd
}
