package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

// appVersion is reported by `repoctl version` and in the User-Agent header.
var appVersion = "dev"

// SetVersion records the build version; main calls it before Execute.
func SetVersion(v string) {
	if v != "" {
		appVersion = v
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the repoctl version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "repoctl %s\n", appVersion)
		},
	}
}
