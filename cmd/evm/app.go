// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/zxygithub/evm/internal/backup"
	"github.com/zxygithub/evm/internal/config"
	"github.com/zxygithub/evm/internal/envexec"
	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/internal/logging"
	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/pkg/types"

	"github.com/charmbracelet/log"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: every Cobra command handler receives an App reference and reaches
	// the store, configuration and process helpers through it.
	App struct {
		Config   ConfigProvider
		Launcher ProcessLauncher
		Clock    backup.Clock
		Environ  func() []string
		Setenv   func(key, value string) error

		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		flags    rootFlags
		cfg      *config.Config
		logger   *log.Logger
		store    *store.Store
		exitCode types.ExitCode
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Launcher ProcessLauncher
		Clock    backup.Clock
		Environ  func() []string
		Setenv   func(key, value string) error
		Stdin    io.Reader
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// ProcessLauncher replaces the current process with argv.
	ProcessLauncher interface {
		Exec(argv, environ []string) error
	}

	// rootFlags holds the persistent flag values of one invocation.
	rootFlags struct {
		envFile    string
		configPath string
		verbose    bool
	}
)

// NewApp creates an App, filling nil dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Launcher == nil {
		deps.Launcher = envexec.NewLauncher()
	}
	if deps.Clock == nil {
		deps.Clock = backup.SystemClock
	}
	if deps.Environ == nil {
		deps.Environ = os.Environ
	}
	if deps.Setenv == nil {
		deps.Setenv = os.Setenv
	}
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config:   deps.Config,
		Launcher: deps.Launcher,
		Clock:    deps.Clock,
		Environ:  deps.Environ,
		Setenv:   deps.Setenv,
		stdin:    deps.Stdin,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
		logger:   logging.Discard(),
	}
}

// ExitCode is the status of the last executed command.
func (a *App) ExitCode() types.ExitCode {
	return a.exitCode
}

// verbose reports whether --verbose or ui.verbose is set.
func (a *App) verbose() bool {
	if a.flags.verbose {
		return true
	}
	return a.cfg != nil && a.cfg.UI.Verbose
}

// loadConfig resolves configuration for this invocation. A failure is reported
// as a warning and defaults apply.
func (a *App) loadConfig(ctx context.Context) {
	opts := config.LoadOptions{ConfigFilePath: types.FilesystemPath(a.flags.configPath)}
	cfg, err := a.Config.Load(ctx, opts)
	if err != nil {
		renderWarning(a.stderr, newServiceError(err, issue.ConfigLoadFailedId, ""), a.flags.verbose)
		cfg = config.DefaultConfig()
	}
	a.cfg = cfg
	a.logger = logging.New(a.stderr, a.verbose())
	a.logger.Debug("configuration resolved", "source", cfg.Source)
}

// envFilePath is --env-file when given, else the configured store file.
func (a *App) envFilePath() string {
	if a.flags.envFile != "" {
		return a.flags.envFile
	}
	return a.cfg.EnvFilePath()
}

// openStore loads the store once per invocation.
func (a *App) openStore() *store.Store {
	if a.store == nil {
		path := a.envFilePath()
		a.logger.Debug("opening store", "path", path)
		a.store = store.Open(store.NewFileStorage(path, a.logger), store.WithLogger(a.logger))
	}
	return a.store
}
