package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mrbonezy/git-linear-branch/branch"
	"github.com/mrbonezy/git-linear-branch/store"
	"github.com/mrbonezy/git-linear-branch/ui"
)

const helpText = "Utility to create branch names from past linear branch names."

var errNotImplemented = errors.New("--delete is not implemented")

type options struct {
	delete     bool
	dryRun     bool
	pick       bool
	verbose    bool
	completion string
}

type app struct {
	cfg       Config
	out       io.Writer
	errOut    io.Writer
	dir       string
	git       gitClient
	openStore func(repoRoot string) branch.Store
	now       func() time.Time
	pick      func(rows []ui.BranchRow) (string, error)
	log       *logrus.Logger
}

func newApp(cfg Config, out io.Writer, errOut io.Writer) *app {
	log := newLogger(errOut)
	a := &app{
		cfg:    cfg,
		out:    out,
		errOut: errOut,
		git:    newGitClient(cfg, log),
		openStore: func(repoRoot string) branch.Store {
			return store.ForRepo(repoRoot)
		},
		now: time.Now,
		log: log,
	}
	a.pick = func(rows []ui.BranchRow) (string, error) {
		return pickPrefix(rows, ui.NewStyles(os.Stderr, colorEnabled(a.cfg)))
	}
	return a
}

func newRootCommand(a *app, args []string) *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "git-linear-branch [prefix-or-word] [word...]",
		Short: helpText,
		Long: helpText + "\n\n" +
			"Without arguments, lists remembered prefixes, most recent first.\n" +
			"If the first argument starts with owner/TICKET-123, that prefix is used: a single\n" +
			"argument is taken as the full branch name, further words are joined with '-'.\n" +
			"Otherwise all words are appended to the most recently used prefix.\n" +
			"Flags are only read before the first argument.",
		Example: strings.Join([]string{
			"  git-linear-branch owner/BAR-123-add-thing",
			"  git-linear-branch tweak copy",
			"  git-linear-branch owner/BAR-123 fix tests",
			"  git-linear-branch --pick follow up",
		}, "\n"),
		Version:           currentVersion(),
		Args:              cobra.ArbitraryArgs,
		ValidArgsFunction: a.completePrefixes,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			if opts.completion != "" {
				return writeCompletion(cmd.Root(), a.out, opts.completion)
			}
			return a.runDefault(opts, cmdArgs)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	bindFlags(root.Flags(), &opts)
	// Words after the first argument become part of the branch name, even
	// when they start with a dash.
	root.Flags().SetInterspersed(false)

	if len(args) > 0 {
		root.SetArgs(args[1:])
	}
	return root
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.BoolVar(&opts.delete, "delete", false, "Forget a remembered prefix (not implemented)")
	fs.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print the branch name without creating it")
	fs.BoolVarP(&opts.pick, "pick", "p", false, "Choose the prefix interactively")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug details to stderr")
	fs.StringVar(&opts.completion, "completion", "", "Print a shell completion script (bash, zsh, fish)")
}

func usageError(cmd *cobra.Command, message string) error {
	return fmt.Errorf("%s\n\n%s", message, strings.TrimSpace(cmd.UsageString()))
}
