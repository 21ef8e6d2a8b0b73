package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Attach registers a version subcommand on the root command.
func Attach(root *cobra.Command) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and build metadata",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Full())
		},
	})
}
