package app

import (
	"testing"

	"github.com/eventtix/eventtix/internal/cmd/globals"
)

// TestRootCommandRegistersSharedFlags verifies the shared flags are on the
// root command and readable through globals.Parse.
func TestRootCommandRegistersSharedFlags(t *testing.T) {
	app, err := New("test", "none", "unknown", "tests")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	for _, name := range []string{"output", "quiet", "verbose", "no-color"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command missing --%s", name)
		}
	}

	if err := root.PersistentFlags().Parse([]string{"--output", "json", "--quiet"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	flags, err := globals.Parse(root)
	if err != nil {
		t.Fatalf("globals.Parse() failed: %v", err)
	}
	if flags.Output != "json" {
		t.Errorf("Output = %q, want json", flags.Output)
	}
	if !flags.Quiet {
		t.Error("Quiet not set")
	}
}

// TestRootCommandFormatAlias verifies the hidden --format alias feeds the
// same value as --output.
func TestRootCommandFormatAlias(t *testing.T) {
	app, err := New("test", "none", "unknown", "tests")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	root := app.createRootCommand()
	if err := root.PersistentFlags().Parse([]string{"--format", "yaml"}); err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	flags, err := globals.Parse(root)
	if err != nil {
		t.Fatalf("globals.Parse() failed: %v", err)
	}
	if flags.Output != "yaml" {
		t.Errorf("Output = %q, want yaml", flags.Output)
	}
}

// TestBuildClientRequiresBackendURL verifies a missing backend URL surfaces
// as a configuration error rather than a transport failure.
func TestBuildClientRequiresBackendURL(t *testing.T) {
	t.Setenv("EVENTTIX_BACKEND_URL", "")
	t.Setenv("EVENTTIX_API_KEY", "")

	app := &App{
		config:  &Config{StateDir: t.TempDir()},
		notices: newNoticeSink(),
	}

	_, err := app.buildClient()
	if err == nil {
		t.Fatal("buildClient() succeeded without a backend URL")
	}
}
