// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the umaskexec command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/janderssonse/umaskexec/internal/adapters/system"
	"github.com/janderssonse/umaskexec/internal/config"
	"github.com/janderssonse/umaskexec/internal/console"
	"github.com/janderssonse/umaskexec/internal/domain"
	"github.com/janderssonse/umaskexec/internal/mask"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const (
	// Name is the program name used in messages.
	Name = "umaskexec"
	// Version is reported by --version.
	Version = "1.0.0"

	configEnv = "UMASKEXEC_CONFIG"
)

// CLI runs umaskexec against a mask store and a command executor.
type CLI struct {
	app      *cli.Command
	store    mask.Store
	executor domain.Executor
	stdout   io.Writer
	stderr   io.Writer
	environ  func() []string

	operands []string
	output   *console.Output
	config   *config.Config
	verbose  bool
}

// NewCLI creates the CLI bound to the process mask and the real exec.
func NewCLI() *CLI {
	return NewCLIWithDeps(system.NewProcessMask(), system.NewCommandExecutor(), os.Stdout, os.Stderr)
}

// NewCLIWithDeps creates the CLI with injected dependencies for testing.
func NewCLIWithDeps(store mask.Store, executor domain.Executor, stdout, stderr io.Writer) *CLI {
	app := &CLI{
		store:    store,
		executor: executor,
		stdout:   stdout,
		stderr:   stderr,
		environ:  os.Environ,
		output:   console.NewOutput(stdout, stderr, console.OctalFormat, Name),
		config:   config.Default(),
	}

	symbolicFlag := &cli.BoolFlag{
		Name:    "symbolic",
		Aliases: []string{"S"},
		Usage:   "print masks in symbolic form (u=rwx,g=rx,o=rx)",
	}
	octalFlag := &cli.BoolFlag{
		Name:    "octal",
		Aliases: []string{"o"},
		Usage:   "print masks in octal form, overriding the config file",
	}

	app.app = &cli.Command{
		Name:      Name,
		Usage:     "run a command with a modified file mode creation mask",
		UsageText: Name + " [options] [--] [<mask> [<command> [<argument>]...]]",
		Version:   Version,
		Description: `The mask is either octal (022, 0027) or symbolic (u=rwx,g=rx,o=, a-w,u+w).
Symbolic masks are applied to the current mask, clause by clause.
A mask of the form @name expands to a preset from the config file.

Without a mask the current mask is printed. Without a command the new
mask is printed. Otherwise the command replaces umaskexec.

Examples:
  umaskexec                      # print the current mask
  umaskexec 077 ./backup.sh      # run with a private mask
  umaskexec -- -w make install   # symbolic masks starting with '-' need --
  umaskexec --explain g+w        # show what a mask allows`,
		HideHelp:               true,
		HideHelpCommand:        true,
		HideVersion:            true,
		UseShortOptionHandling: true,
		Writer:                 stdout,
		ErrWriter:              stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "show help information",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"V"},
				Usage:   "print the version",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "output structured JSON results",
			},
			&cli.BoolFlag{
				Name:    "explain",
				Aliases: []string{"e"},
				Usage:   "show a table of what the mask allows",
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "log debug messages to stderr",
				Destination: &app.verbose,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: panic, fatal, error, warn, info, debug or trace",
				Value: config.DefaultLogLevel,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
				Sources: cli.EnvVars(configEnv),
			},
		},
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
			{Flags: [][]cli.Flag{{symbolicFlag}, {octalFlag}}},
		},
		Before:       app.initConfig,
		Action:       app.run,
		OnUsageError: app.usageError,
	}

	return app
}

// Run executes the CLI with os.Args style arguments.
func (app *CLI) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{Name}
	}

	options, operands, err := splitArgs(args[1:])
	if err != nil {
		return err
	}

	// Flags are parsed by urfave/cli anywhere on the line, so only the
	// leading options are handed to it.
	app.operands = operands

	return app.app.Run(ctx, append([]string{args[0]}, options...))
}

// ReportError prints err and returns the exit code for it.
func (app *CLI) ReportError(err error) int {
	if err == nil {
		return domain.ExitSuccess
	}

	exitErr := &domain.ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = domain.NewExitError(domain.ExitGeneralError, "unexpected error: "+err.Error(), err)
	}

	if exitErr.Message != "" {
		_ = app.output.Error(exitErr.Message)
	}

	return exitErr.Code
}

func (app *CLI) usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return domain.NewExitError(domain.ExitGeneralError, "bad option: "+err.Error(), domain.ErrBadOption)
}

// initConfig loads the config file, configures logging and selects the
// output format.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logrus.SetOutput(app.stderr)

	if cmd.Bool("version") {
		return ctx, nil
	}

	path := cmd.String("config")

	var (
		cfg *config.Config
		err error
	)

	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath())
	}

	if err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, err.Error(), err)
	}

	app.config = cfg

	level := cfg.LogLevel
	if cmd.IsSet("log-level") {
		level = cmd.String("log-level")
	}

	if app.verbose {
		level = logrus.DebugLevel.String()
	}

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitGeneralError, "bad option: --log-level "+level, domain.ErrBadOption)
	}

	logrus.SetLevel(logLevel)

	if cfg.Path() != "" {
		logrus.Debugf("loaded config from %s", cfg.Path())
	}

	app.output = console.NewOutput(app.stdout, app.stderr, app.format(cmd), Name)

	return ctx, nil
}

func (app *CLI) format(cmd *cli.Command) console.Format {
	switch {
	case cmd.Bool("json"):
		return console.JSONFormat
	case cmd.Bool("explain"):
		return console.ExplainFormat
	case cmd.Bool("symbolic"):
		return console.SymbolicFormat
	case cmd.Bool("octal"):
		return console.OctalFormat
	case app.config.Symbolic:
		return console.SymbolicFormat
	default:
		return console.OctalFormat
	}
}

// run is the root action: print, apply or apply and execute.
func (app *CLI) run(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("version") {
		_, err := fmt.Fprintf(app.stdout, "%s %s\n", Name, Version)
		return app.outputError(err)
	}

	if len(app.operands) == 0 {
		return app.printMask(app.store.Load())
	}

	newMask, err := app.applyMask(app.operands[0])
	if err != nil {
		return err
	}

	if len(app.operands) == 1 {
		return app.printMask(newMask)
	}

	return app.execCommand(app.operands[1:])
}

func (app *CLI) applyMask(arg string) (mask.Mask, error) {
	expr, err := app.config.Resolve(arg)
	if err != nil {
		return 0, domain.NewExitError(domain.ExitGeneralError, "bad umask: "+err.Error(), domain.ErrBadUmask)
	}

	newMask, err := mask.Apply(expr, app.store)
	if err != nil {
		exprErr := &mask.ExpressionError{}
		if errors.As(err, &exprErr) {
			logrus.Debugf("rejected %q: %v", arg, exprErr.Cause)
		}

		return 0, domain.NewExitError(domain.ExitGeneralError, "bad umask: "+arg, domain.ErrBadUmask)
	}

	logrus.Debugf("mask %s set to %s", arg, newMask.Octal())

	return newMask, nil
}

func (app *CLI) execCommand(argv []string) error {
	logrus.Debugf("executing %s", commandLine(argv))

	err := app.executor.Exec(argv[0], argv, app.environ())
	if err == nil {
		return nil
	}

	return domain.NewExitError(
		domain.ExitCodeForExec(err),
		domain.FormatErrorMessage(err, argv[0], app.verbose),
		err,
	)
}

func (app *CLI) printMask(m mask.Mask) error {
	return app.outputError(app.output.Mask(domain.NewMaskResult(m)))
}

func (app *CLI) outputError(err error) error {
	if err == nil {
		return nil
	}

	return domain.NewExitError(domain.ExitGeneralError, err.Error(), err)
}
