// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// AppContext defines the interface that the version command needs from the app.
type AppContext interface {
	Version() string
	Commit() string
	Date() string
	BuiltBy() string
}

// NewCommand creates the version command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the eventtix CLI.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("eventtix version %s\n", app.Version())
			fmt.Printf("commit: %s\n", app.Commit())
			fmt.Printf("built: %s\n", app.Date())
			fmt.Printf("built by: %s\n", app.BuiltBy())
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
