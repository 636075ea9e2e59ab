package app

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newProjectCmd() *cobra.Command {
	var sortVersion, sortRepo bool

	cmd := &cobra.Command{
		Use:   "project <name>",
		Short: "List the packages every repository ships for a project",
		Example: `  repoctl project ripgrep
  repoctl project ripgrep --sort-version -o table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			pkgs, err := src.Project(ctx, args[0])
			if err != nil {
				return err
			}
			log.Debug("project fetched", zap.String("project", args[0]), zap.Int("packages", len(pkgs)))
			if len(pkgs) == 0 {
				warn("No packages found for %q", args[0])
			}

			switch {
			case sortVersion:
				sortPackagesByVersion(pkgs)
			case sortRepo:
				sortPackagesByRepo(pkgs)
			}
			return out.ListPackages(pkgs)
		},
	}

	cmd.Flags().BoolVar(&sortVersion, "sort-version", false, "Sort by version")
	cmd.Flags().BoolVar(&sortRepo, "sort-repo", false, "Sort by repository")
	cmd.MarkFlagsMutuallyExclusive("sort-version", "sort-repo")
	return cmd
}
