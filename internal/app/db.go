package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repoctl/internal/frontend"
	"github.com/blackwell-systems/repoctl/internal/util"
	"github.com/blackwell-systems/repoctl/internal/versiondb"
)

func newDBCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "db",
		Short: "Track project versions in a local database",
		Long: `Track project versions in a local database.

The database records, per project, the versions already seen. 'update'
lists the packages whose versions are new since the last commit.

Results are reported project by project: with -o json, 'update' and
'show' write one JSON array per tracked project (a stream of documents,
one per project, in name order). 'show --local -o table' collects every
project into a single table.`,
	}
	cmd.PersistentFlags().StringVar(&file, "file", "", "Version database path (default: database from config)")

	open := func() (*versiondb.DB, error) {
		path := cfg.Database
		if file != "" {
			path = util.ExpandHome(file)
		}
		return versiondb.Open(path, log.Named("versiondb"))
	}

	cmd.AddCommand(
		newDBUpdateCmd(open),
		newDBShowCmd(open),
		newDBAddCmd(open),
	)
	return cmd
}

type dbOpener func() (*versiondb.DB, error)

func newDBUpdateCmd(open dbOpener) *cobra.Command {
	var commit bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "List packages with versions not yet in the database",
		Long: `Fetch every tracked project and list the packages whose versions are not
yet recorded. Nothing is written unless --commit is given; with --commit
the fetched versions are recorded once every project was fetched.

With -o json the output is one JSON array per tracked project, empty
arrays included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			if len(db.Projects()) == 0 {
				warn("No projects tracked in %s. Run: repoctl db add <project>", db.Path())
				return nil
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			if err := db.Update(ctx, commit, src, out); err != nil {
				return err
			}
			if commit {
				ok("Recorded versions for %d project(s) in %s", len(db.Projects()), db.Path())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&commit, "commit", "C", false, "Record the fetched versions")
	return cmd
}

func newDBShowCmd(open dbOpener) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the tracked projects",
		Long: `Show the current upstream packages of every tracked project, or with
--local the versions recorded in the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}
			if local {
				if err := db.ShowLocal(out); err != nil {
					return err
				}
				return frontend.Flush(out)
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()
			return db.Show(ctx, src, out)
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Show the recorded versions without querying the source")
	return cmd
}

func newDBAddCmd(open dbOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <project>...",
		Short: "Start tracking projects",
		Long: `Fetch each project and record all versions currently known for it,
replacing any earlier record. Projects are added one at a time; the first
failure stops the command and earlier projects stay recorded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open()
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd)
			defer cancel()

			for _, name := range args {
				if err := db.Add(ctx, name, src); err != nil {
					return err
				}
				ok("Tracking %s (%d version(s))", name, len(db.Versions(name)))
			}
			return nil
		},
	}
	return cmd
}
