// Package auth implements the auth command group: session status, sign-in,
// sign-up and sign-out.
package auth

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	eventtix "github.com/eventtix/eventtix"
	"github.com/eventtix/eventtix/internal/cmd/globals"
	"github.com/eventtix/eventtix/internal/cmd/notify"
	"github.com/eventtix/eventtix/pkg/errors"
)

// AppContext defines the interface that auth commands need from the app.
type AppContext interface {
	Client(ctx context.Context) (eventtix.Client, error)
	Logger() *zerolog.Logger
	OutputFormat() string
	Notices() []eventtix.Notice
}

// NewCommand creates the auth command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth [subcommand]",
		GroupID: "account",
		Short:   "Manage the signed-in session",
		Long: `Auth manages the account session.

A successful sign-in completes any purchase or favorite that was held
while signed out.`,
		Example: `  eventtix auth status                      # Show session status
  eventtix auth signin --email a@b.com      # Sign in (prompts for password)
  eventtix auth signup --email a@b.com      # Create an account
  eventtix auth signout                     # Sign out`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown subcommand: %s", args[0])
		},
	}

	cmd.AddCommand(newStatusCommand(app))
	cmd.AddCommand(newSignInCommand(app))
	cmd.AddCommand(newSignUpCommand(app))
	cmd.AddCommand(newSignOutCommand(app))

	return cmd
}

func newStatusCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			sess := client.Session()
			if !sess.Valid() {
				fmt.Println("Signed out")
			} else if user, userErr := client.CurrentUser(cmd.Context()); userErr != nil {
				fmt.Printf("Signed in as %s (session not verified: %v)\n", sess.User.Name(), userErr)
			} else {
				fmt.Printf("Signed in as %s <%s>\n", user.Name(), user.Email)
			}

			if action, ok := client.PendingAction(); ok {
				fmt.Printf("Pending after sign-in: %s for event %d\n", action.Kind, action.EventID)
			}
			return nil
		},
	}
}

func newSignInCommand(app AppContext) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			email, password, err = resolveCredentials(email, password)
			if err != nil {
				return err
			}

			signInErr := client.SignIn(cmd.Context(), email, password)
			printNotices(cmd, app)
			return signInErr
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")

	return cmd
}

func newSignUpCommand(app AppContext) *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			email, password, err = resolveCredentials(email, password)
			if err != nil {
				return err
			}

			signUpErr := client.SignUp(cmd.Context(), email, password, name)
			printNotices(cmd, app)
			return signUpErr
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringVar(&name, "name", "", "Display name shown on the account")

	return cmd
}

func newSignOutCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "signout",
		Short: "Sign out of the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}

			signOutErr := client.SignOut(cmd.Context())
			printNotices(cmd, app)
			return signOutErr
		},
	}
}

// resolveCredentials fills in missing credentials from the terminal.
func resolveCredentials(email, password string) (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", errors.WrapIO("read", "email", err)
		}
		email = strings.TrimSpace(line)
	}

	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", errors.WrapIO("read", "password", err)
		}
		password = strings.TrimSpace(line)
	}

	if email == "" || password == "" {
		return "", "", errors.NewValidationError("credentials", "", "email and password are required")
	}
	return email, password, nil
}

func printNotices(cmd *cobra.Command, app AppContext) {
	flags, err := globals.Parse(cmd)
	if err != nil {
		flags = &globals.Flags{}
	}
	notify.NewPrinter(flags.Quiet).Print(app.Notices())
}
