// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/zxygithub/evm/internal/envexec"

	"github.com/spf13/cobra"
)

func newExecCommand(app *App) *cobra.Command {
	var virtual bool

	execCmd := &cobra.Command{
		Use:   "exec [--virtual] -- COMMAND [ARGS...]",
		Short: "Run a program with the stored variables in its environment",
		Long: `Run COMMAND with the current environment plus every stored variable.
Stored values win over inherited ones.

COMMAND replaces the evm process, so its exit status is the exit status of
evm. With --virtual, COMMAND is a shell snippet run by the built-in POSIX
shell interpreter and the remaining ARGS become its positional parameters.`,
		Example: `  evm exec -- python script.py
  evm exec --virtual 'echo "$API_KEY"'`,
		GroupID: groupRun,
		Args:    cobra.MinimumNArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			environ := envexec.BuildEnviron(app.Environ(), app.openStore().Snapshot())

			if !virtual {
				app.logger.Debug("replacing process", "command", args[0], "env", len(environ))
				return app.Launcher.Exec(args, environ)
			}

			runner := envexec.VirtualRunner{Args: args[1:]}
			code, err := runner.Run(cmd.Context(), args[0], environ, envexec.IO{
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			if !code.IsSuccess() {
				return &ExitError{Code: code}
			}
			return nil
		}),
	}

	execCmd.Flags().SetInterspersed(false)
	execCmd.Flags().BoolVar(&virtual, "virtual", false, "run COMMAND as a script in the built-in shell interpreter")

	return execCmd
}

func newLoadMemoryCommand(app *App) *cobra.Command {
	var (
		prefix   string
		noPrefix bool
	)

	loadMemoryCmd := &cobra.Command{
		Use:   "loadmemory",
		Short: "Copy stored variables into the evm process environment",
		Long: `Copy stored variables into the environment of the running evm process.

Names are prefixed with 'EVM:' unless --no-prefix is given. --prefix keeps only
keys starting with the given text.`,
		GroupID: groupRun,
		Args:    cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			writer := envexec.EnvWriter{Setenv: app.Setenv}
			loaded, err := writer.Apply(app.openStore().Snapshot(), prefix, !noPrefix)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if loaded == 0 {
				fmt.Fprintln(out, "No environment variables to load")
				if prefix != "" {
					fmt.Fprintf(out, "No variables found with prefix '%s'\n", prefix)
				}
				return nil
			}

			fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Loaded %d environment variables to memory", loaded)))
			if !noPrefix {
				fmt.Fprintf(out, "Prefix '%s' added to all variable names\n", envexec.MemoryPrefix)
			}
			if prefix != "" {
				fmt.Fprintf(out, "Filter: keys starting with '%s'\n", prefix)
			}
			return nil
		}),
	}

	loadMemoryCmd.Flags().StringVarP(&prefix, "prefix", "p", "", "only load keys starting with this prefix")
	loadMemoryCmd.Flags().BoolVar(&noPrefix, "no-prefix", false, "do not add the 'EVM:' prefix to variable names")

	return loadMemoryCmd
}
