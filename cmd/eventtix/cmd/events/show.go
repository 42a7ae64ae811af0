package events

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/eventtix/eventtix/internal/cmd/output"
	"github.com/eventtix/eventtix/internal/cmd/table"
	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/errors"
)

// NewShowCommand creates the events show command.
func NewShowCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show one event with its ticket tiers",
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

			event, err := client.Event(id)
			printNotices(cmd, app)
			if err != nil {
				return err
			}

			return printEvent(app, event)
		},
	}

	return cmd
}

// printEvent renders an event with its tier table.
func printEvent(app AppContext, event catalogue.Event) error {
	format := output.DetectFormat(app.OutputFormat())
	formatter := output.NewFormatter(format)

	// Structured formats get the whole event in one document.
	if format == output.FormatJSON || format == output.FormatYAML {
		return formatter.Format(os.Stdout, event)
	}

	fmt.Printf("%s\n", event.Artist)
	fmt.Printf("%s · %s %s · %s\n", event.Venue, event.Date, event.Time, event.Genre)
	if event.Description != "" {
		fmt.Printf("\n%s\n", event.Description)
	}
	fmt.Println()

	return formatter.Format(os.Stdout, table.TiersToTableData(event))
}
