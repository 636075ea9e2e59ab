package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/repoctl/internal/compare"
)

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <file> <repo>...",
		Short: "Compare a local package list against repositories",
		Long: `Compare the versions in a local package list against what the given
repositories ship.

The list is JSON (an array of {"name", "version", "comment"} objects) or
CSV separated by ';' with a name;version;comment header, chosen by the
file extension.`,
		Example: `  repoctl compare packages.json arch debian_12
  repoctl compare packages.csv nix_unstable -o table`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := compare.Load(args[0])
			if err != nil {
				return err
			}
			log.Debug("package list loaded", zap.String("file", args[0]), zap.Int("entries", len(entries)))

			ctx, cancel := commandContext(cmd)
			defer cancel()

			results, err := compare.Compare(ctx, src, entries, args[1:])
			if err != nil {
				return err
			}
			return out.ListComparisons(results)
		},
	}
	return cmd
}
