package events

import (
	"github.com/spf13/cobra"

	"github.com/eventtix/eventtix/pkg/errors"
)

// NewFeaturedCommand creates the events featured command.
func NewFeaturedCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show the featured event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			event, ok := client.Featured()
			if !ok {
				return errors.NewNotFoundError("featured event", "")
			}

			return printEvent(app, event)
		},
	}

	return cmd
}
