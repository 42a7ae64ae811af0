// Package buy implements the ticket purchase command.
package buy

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
	"github.com/eventtix/eventtix/pkg/checkout"
	"github.com/eventtix/eventtix/pkg/errors"
)

// AppContext defines the interface that the buy command needs from the app.
type AppContext interface {
	Client(ctx context.Context) (eventtix.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
	Notices() []eventtix.Notice
}

// NewCommand creates the buy command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var tier string
	var quantity int
	var quoteOnly bool

	cmd := &cobra.Command{
		Use:     "buy <event-id>",
		GroupID: "core",
		Short:   "Buy tickets for an event",
		Long: `Buy purchases tickets for an event.

Without --tier the event's first tier is used. Quantity is clamped to
the 1-10 range. Buying requires a signed-in account; signed out, the
purchase is held and completed after the next successful sign-in.

The total includes a 10% service fee.`,
		Example: `  eventtix buy 3                       # 1 ticket, first tier
  eventtix buy 3 --tier VIP --qty 2    # 2 VIP tickets
  eventtix buy 3 --quote               # Price it without buying`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.NewValidationError("event-id", args[0], "must be a number")
			}

			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			formatter := output.NewFormatter(output.DetectFormat(app.OutputFormat()))

			if quoteOnly {
				return printQuote(client, formatter, id, tier, quantity)
			}

			ticket, buyErr := client.Buy(cmd.Context(), id, tier, quantity)
			printNotices(cmd, app)
			if buyErr != nil {
				if errors.Is(buyErr, eventtix.ErrPendingAuth) {
					fmt.Fprintf(os.Stderr, "%s Sign in to buy tickets; the purchase will complete after you sign in.\n", emoji.Warning)
					return nil
				}
				return buyErr
			}

			return formatter.Format(os.Stdout, ticket)
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "", "Ticket tier (default: the event's first tier)")
	cmd.Flags().IntVar(&quantity, "qty", 1, "Number of tickets (1-10)")
	cmd.Flags().BoolVar(&quoteOnly, "quote", false, "Show the itemized cost without buying")

	return cmd
}

// printQuote renders the itemized cost for a prospective purchase.
func printQuote(client eventtix.Client, formatter output.Formatter, id int64, tier string, quantity int) error {
	event, err := client.Event(id)
	if err != nil {
		return err
	}

	purchase := checkout.NewPurchase(event)
	if tier != "" {
		if err := purchase.SelectTier(tier); err != nil {
			return err
		}
	}
	purchase.SetQuantity(quantity)

	return formatter.Format(os.Stdout, table.QuoteToTableData(purchase.Quote()))
}

func printNotices(cmd *cobra.Command, app AppContext) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		flags = &globals.Flags{}
	}
	notify.NewPrinter(flags.Quiet).Print(app.Notices())
}
