// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all command-line commands.
package emoji

const (
	// Success represents successful completion of an operation.
	// Used for: recorded purchases, successful sign-in, added favorites.
	Success = "✓"

	// Error represents failures or missing required configuration.
	// Used for: failed operations, rejected credentials, missing backend config.
	Error = "✗"

	// Warning represents warnings or non-critical issues.
	// Used for: short search queries, pending sign-in actions.
	Warning = "!"

	// Favorite marks a favorited event in listings.
	Favorite = "♥"

	// Featured marks the featured event in listings.
	Featured = "★"
)
