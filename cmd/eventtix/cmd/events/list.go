package events

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/eventtix/eventtix/internal/cmd/globals"
	"github.com/eventtix/eventtix/internal/cmd/notify"
	"github.com/eventtix/eventtix/internal/cmd/output"
	"github.com/eventtix/eventtix/internal/cmd/table"
	"github.com/eventtix/eventtix/pkg/catalogue"
	"github.com/eventtix/eventtix/pkg/errors"
)

// NewListCommand creates the events list command.
func NewListCommand(app AppContext) *cobra.Command {
	var genre string
	var search string
	var details bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events with optional genre filter and search",
		Long: `List displays events from the catalogue.

The genre filter matches exactly, ignoring case; "all" or an empty genre
passes everything. Search matches a case-insensitive substring of the
artist, venue, or genre and needs at least 2 characters.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			results, err := client.Events(catalogue.Filter{Genre: genre, Query: search})
			printNotices(cmd, app)
			if err != nil && !errors.Is(err, errors.ErrQueryTooShort) {
				return err
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))
			return formatter.Format(os.Stdout, table.EventsToTableData(results, details))
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "Filter by genre (exact match, case-insensitive)")
	cmd.Flags().StringVar(&search, "search", "", "Search artist, venue, or genre (min 2 characters)")
	cmd.Flags().BoolVar(&details, "details", false, "Include tier count and description")

	return cmd
}

// printNotices drains and prints the notices produced by the operation.
func printNotices(cmd *cobra.Command, app AppContext) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		flags = &globals.Flags{}
	}
	notify.NewPrinter(flags.Quiet).Print(app.Notices())
}
