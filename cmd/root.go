// Package cmd implements the CLI command structure for pydo.
package cmd

import (
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nibzard/pydo/internal/command"
	"github.com/nibzard/pydo/internal/config"
	"github.com/nibzard/pydo/internal/logging"
	"github.com/nibzard/pydo/internal/todo"
)

// Version is set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ownsTerminal marks commands that draw on the terminal themselves. Their
// logs go to the configured log file or nowhere.
const ownsTerminal = "owns-terminal"

// Run executes the pydo CLI.
func Run(ctx context.Context, args []string) error {
	return execute(ctx, args, color.Output, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := &app{stderr: stderr}
	defer a.close()

	root := a.rootCommand()
	root.SetArgs(protectNegativeIndexes(args))
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	stderr io.Writer

	sources    *config.ConfigWithSources
	cfg        *config.Config
	logger     *logging.Logger
	store      *todo.Store
	dispatcher *command.Dispatcher
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "pydo [verb] [args...]",
		Short: "Personal todo tracker",
		Long: `pydo keeps a todo list and a list of things to remember in one JSON file.

Run a verb to change the file, or "pydo ui" for the interactive dashboard.
Without arguments pydo only makes sure the file exists. Unknown verbs are
ignored.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			args = restoreNegativeIndexes(args)
			if len(args) == 0 {
				return a.dispatcher.Run("")
			}
			return a.dispatcher.Run(args[0], args[1:]...)
		},
	}
	config.BindFlags(root.PersistentFlags())

	addVerbs(root, a)
	addUI(root, a)
	addList(root, a)
	addDoctor(root, a)
	addConfig(root, a)
	addVersion(root)
	return root
}

// setup loads the configuration and builds the logger, store and dispatcher.
func (a *app) setup(cmd *cobra.Command) error {
	cws, err := config.LoadWithSources(cmd.Flags())
	if err != nil {
		return err
	}
	a.sources = cws
	a.cfg = cws.Config

	var output io.Writer = a.stderr
	if cmd.Annotations[ownsTerminal] == "true" {
		output = nil
	}
	logger, err := logging.New(logging.OptionsFromConfig(a.cfg, output))
	if err != nil {
		return err
	}
	a.logger = logger
	logger.Debug("loaded config", "files", cws.Files, "todo_file", a.cfg.TodoFile)

	a.store = todo.NewStore(a.cfg.TodoFile, logger.Logger)
	a.dispatcher = command.New(a.store, logger.Logger)
	return nil
}

func (a *app) close() {
	if err := a.logger.Close(); err != nil && a.stderr != nil {
		_, _ = io.WriteString(a.stderr, "close log file: "+err.Error()+"\n")
	}
}
