// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for evm.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/zxygithub/evm/internal/config"
	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the evm command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evm",
		Short: "Environment Variable Manager",
		Long: TitleStyle.Render("evm") + SubtitleStyle.Render(" - Environment Variable Manager") + `

evm keeps named environment variables in a local JSON store, organizes
them into groups, exchanges them with JSON, .env and shell files, and
runs programs with the stored variables in their environment.

Variables named "group:NAME" belong to a group; all others live in the
implicit default namespace.

` + SubtitleStyle.Render("Examples:") + `
  evm set API_KEY secret          Store a variable
  evm setg dev DB_HOST localhost  Store a variable in group 'dev'
  evm list --show-groups          Show variables grouped by namespace
  evm export -f sh -o env.sh      Write a sourceable shell script
  evm load .env --group dev       Import a .env file into group 'dev'
  evm exec -- python app.py       Run a program with the stored variables`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			app.loadConfig(cmd.Context())
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&app.flags.envFile, "env-file", "", "store file (default is ~/.evm/env.json)")
	rootCmd.PersistentFlags().StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/evm/config.cue)")
	rootCmd.PersistentFlags().BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupVariables, Title: "Variables:"},
		&cobra.Group{ID: groupGroups, Title: "Groups:"},
		&cobra.Group{ID: groupTransfer, Title: "Import and export:"},
		&cobra.Group{ID: groupRun, Title: "Running programs:"},
	)

	rootCmd.AddCommand(newVariableCommands(app)...)
	rootCmd.AddCommand(newGroupCommands(app)...)
	rootCmd.AddCommand(newTransferCommands(app)...)
	rootCmd.AddCommand(newExecCommand(app), newLoadMemoryCommand(app))
	rootCmd.AddCommand(newConfigCommand(app), newInfoCommand(app))

	return rootCmd
}

const (
	groupVariables = "variables"
	groupGroups    = "groups"
	groupTransfer  = "transfer"
	groupRun       = "run"
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// Flag and argument errors; fang has already printed them.
		os.Exit(int(types.ExitFailure))
	}
	os.Exit(int(app.ExitCode()))
}

// runE adapts a command handler so that its error is rendered here and turned
// into the App exit code instead of being returned to fang.
func (a *App) runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		a.exitCode = exitCodeFor(err)
		if err != nil {
			a.logger.Debug("command failed", "command", cmd.Name(), "kind", issue.KindOf(err), "exit", a.exitCode)
			renderError(cmd.ErrOrStderr(), err, a.verbose(), a.issueStyle())
		}
		return nil
	}
}

// issueStyle is the glamour style for catalog help text.
func (a *App) issueStyle() string {
	if a.cfg != nil && a.cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
