package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repoctl/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		force       bool
		repologyURL string
		database    string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a config file with the default settings.

The file is written to --config, $REPOCTL_CONFIG or
~/.config/repoctl/config.yml. An existing file is left alone unless
--force is given.`,
		Example: `  # Default settings
  repoctl init

  # Point at a self-hosted repology instance
  repoctl init --repology-url http://localhost:8080/ --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ResolvePath(flagConfig)

			if _, err := os.Stat(path); err == nil && !force {
				warn("Config already exists at %s (use --force to overwrite)", path)
				return nil
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			c := config.Default()
			if repologyURL != "" {
				c.RepologyURL = repologyURL
			}
			if database != "" {
				c.Database = database
			}
			if err := c.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, c); err != nil {
				return err
			}

			ok("Wrote %s", path)
			header("Next steps")
			fmt.Fprintln(os.Stderr, "  repoctl db add <project>    start tracking a project")
			fmt.Fprintln(os.Stderr, "  repoctl db update           list versions published since")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringVar(&repologyURL, "repology-url", "", "Repology API base URL")
	cmd.Flags().StringVar(&database, "database", "", "Version database path")

	return cmd
}
