// Package cli implements the tubenotes commands.
package cli

import (
	"github.com/spf13/cobra"
)

// RootCmd is the top-level command. Without a subcommand it serves.
var RootCmd = &cobra.Command{
	Use:          "tubenotes",
	Short:        "Notes, bookmarks and YouTube summaries over HTTP",
	Long:         "tubenotes stores notes, bookmarks and YouTube video summaries. Configuration is read from the environment (TUBENOTES_*, MONGODB_URI, OPENAI_API_KEY).",
	SilenceUsage: true,
	RunE:         runServe,
}
