package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/repoctl/internal/config"
	"github.com/blackwell-systems/repoctl/internal/filter"
	"github.com/blackwell-systems/repoctl/internal/frontend"
	"github.com/blackwell-systems/repoctl/internal/logging"
	"github.com/blackwell-systems/repoctl/internal/repology"
	"github.com/blackwell-systems/repoctl/internal/util"
)

var (
	cfg *config.Config
	log *zap.Logger
	src repology.Source
	out frontend.Frontend

	flagConfig  string
	flagVerbose int
	flagQuiet   int
	flagOutput  string
	flagStdin   bool
	flagNoColor bool
	flagTimeout time.Duration
)

// newRootCmd builds the full command tree. Flags are bound to package
// state, so each call resets it.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "repoctl",
		Short: "Track package versions across distributions via repology",
		Long: `repoctl queries repology.org (or a JSON snapshot piped on stdin) for the
packages distributions ship, lists packaging problems, compares a local
package list against chosen repositories, and keeps a local database of
known versions so new releases stand out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repoctl/config.yml)")
	pf.CountVarP(&flagVerbose, "verbose", "v", "Increase log verbosity (repeatable)")
	pf.CountVarP(&flagQuiet, "quiet", "q", "Decrease log verbosity (repeatable)")
	pf.StringVarP(&flagOutput, "output", "o", frontend.FormatLines, "Output format: lines, table or json")
	pf.BoolVarP(&flagStdin, "stdin", "I", false, "Read a repology JSON document from stdin instead of querying the API")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Abort after this long (0 = no limit)")

	_ = root.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return frontend.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		log, err = logging.New(logging.Level(flagVerbose, flagQuiet))
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}

		// init, version and completion work without a usable config.
		if skipsSetup(cmd) {
			return nil
		}

		path := config.ResolvePath(flagConfig)
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config %s: %w", path, err)
		}
		log.Debug("config loaded", zap.String("path", path), zap.String("repology_url", cfg.RepologyURL))

		out, err = frontend.New(flagOutput, cmd.OutOrStdout())
		if err != nil {
			return err
		}

		base, err := newSource(cmd)
		if err != nil {
			return err
		}
		src = filter.Wrap(base, filter.NewRepoFilter(cfg.Allowlist, cfg.Denylist))
		return nil
	}

	root.PersistentPostRun = func(*cobra.Command, []string) {
		if log != nil {
			_ = log.Sync()
		}
	}

	root.AddCommand(
		newProjectCmd(),
		newProblemsCmd(),
		newCompareCmd(),
		newDBCmd(),
		newInitCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// Execute is the entry point called from main.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		stop()
		os.Exit(1)
	}
}

func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "init", "version", "completion", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// newSource picks the replay document on stdin or the remote API.
func newSource(cmd *cobra.Command) (repology.Source, error) {
	if flagStdin {
		if in := cmd.InOrStdin(); in == os.Stdin && util.StdinIsTTY() {
			warn("Reading a repology document from the terminal; end it with Ctrl-D")
		}
		replay, err := repology.NewReplay(cmd.InOrStdin(), log.Named("replay"))
		if err != nil {
			return nil, err
		}
		return replay, nil
	}
	return repology.NewClient(cfg.RepologyURL, "repoctl/"+appVersion, log.Named("repology")), nil
}

// commandContext applies --timeout to the command's context.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flagTimeout > 0 {
		return context.WithTimeout(ctx, flagTimeout)
	}
	return context.WithCancel(ctx)
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.CyanString(fmt.Sprintf(format, a...)))
}
