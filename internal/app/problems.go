package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repoctl/internal/repology"
)

func newProblemsCmd() *cobra.Command {
	var (
		repo, maintainer         string
		sortRepo, sortMaintainer bool
	)

	cmd := &cobra.Command{
		Use:   "problems (--repo <repo> | --maintainer <email>)",
		Short: "List packaging problems for a repository or a maintainer",
		Example: `  repoctl problems --repo arch
  repoctl problems --maintainer me@example.org --sort-repo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			var (
				problems []repology.Problem
				err      error
			)
			if repo != "" {
				problems, err = src.ProblemsForRepo(ctx, repo)
			} else {
				problems, err = src.ProblemsForMaintainer(ctx, maintainer)
			}
			if err != nil {
				return err
			}

			switch {
			case sortRepo:
				sortProblemsByRepo(problems)
			case sortMaintainer:
				sortProblemsByMaintainer(problems)
			}
			return out.ListProblems(problems)
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Repository to list problems for")
	cmd.Flags().StringVar(&maintainer, "maintainer", "", "Maintainer to list problems for")
	cmd.Flags().BoolVar(&sortRepo, "sort-repo", false, "Sort by repository")
	cmd.Flags().BoolVar(&sortMaintainer, "sort-maintainer", false, "Sort by maintainer")
	cmd.MarkFlagsOneRequired("repo", "maintainer")
	cmd.MarkFlagsMutuallyExclusive("repo", "maintainer")
	cmd.MarkFlagsMutuallyExclusive("sort-repo", "sort-maintainer")
	return cmd
}
