// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"fmt"

	"github.com/zxygithub/evm/internal/backup"
	"github.com/zxygithub/evm/internal/codec"
	"github.com/zxygithub/evm/internal/issue"
	"github.com/zxygithub/evm/internal/loader"
	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/pkg/types"

	"github.com/spf13/cobra"
)

var errNothingToExport = fmt.Errorf("%w: no environment variables to export", issue.ErrNotFound)

// newTransferCommands returns the commands that move variables between the store
// and files.
func newTransferCommands(app *App) []*cobra.Command {
	return []*cobra.Command{
		newExportCommand(app),
		newLoadCommand(app),
		newBackupCommand(app),
		newRestoreCommand(app),
	}
}

func newExportCommand(app *App) *cobra.Command {
	var (
		formatFlag string
		output     string
		group      string
		check      bool
	)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export variables to a json, env or sh file",
		Long: `Export variables to a file.

The default format comes from export.default_format (json unless configured).
Without --output the file is written to ./env.<format>.`,
		GroupID: groupTransfer,
		Args:    cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			format, err := app.exportFormat(formatFlag)
			if err != nil {
				return err
			}
			path := output
			if path == "" {
				path = "env." + format.String()
			}

			vars, err := exportVariables(app.openStore(), types.GroupName(group))
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := codec.Encode(&buf, vars, format); err != nil {
				return err
			}
			if check && format == codec.FormatShell {
				for _, problem := range codec.ValidateShell(buf.Bytes()) {
					fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render("Warning:")+" "+problem.Error())
				}
			}
			if err := store.WriteFileAtomic(path, buf.Bytes()); err != nil {
				return issue.NewErrorContext().
					WithOperation("export variables").
					WithResource(path).
					WithSuggestion("Check that the output directory is writable").
					Wrap(err).
					BuildError()
			}

			app.logger.Debug("exported", "path", path, "format", format, "count", len(vars))
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Environment variables exported to: "+path))
			return nil
		}),
	}

	exportCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: json, env or sh")
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default ./env.<format>)")
	exportCmd.Flags().StringVarP(&group, "group", "g", "", "only export variables of this group")
	exportCmd.Flags().BoolVar(&check, "check", false, "report sh export lines a shell would misread")

	return exportCmd
}

// exportFormat resolves --format, falling back to the configured default.
func (a *App) exportFormat(flag string) (codec.Format, error) {
	if flag != "" {
		return codec.ParseFormat(flag)
	}
	return a.cfg.ExportFormat()
}

// exportVariables selects what export writes. Empty selections are errors.
func exportVariables(s *store.Store, group types.GroupName) (map[string]string, error) {
	vars := s.Filter(store.ListOptions{Group: group})
	if len(vars) > 0 {
		return vars, nil
	}
	if group != "" {
		return nil, &store.GroupNotFoundError{Group: group.String()}
	}
	return nil, errNothingToExport
}

func newLoadCommand(app *App) *cobra.Command {
	var (
		formatFlag string
		replace    bool
		group      string
		nest       bool
	)

	loadCmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load variables from a json or env file",
		Long: `Load variables from FILE, merging them into the store.

The format is detected from the file extension, or from the content when the
extension is unknown. A JSON backup file is recognized and its variables are
loaded. --nest turns top-level JSON objects into groups.`,
		GroupID: groupTransfer,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			req := loader.Request{
				Path:    types.FilesystemPath(args[0]),
				Replace: replace,
				Group:   types.GroupName(group),
				Nest:    nest,
			}
			if formatFlag != "" {
				format, err := codec.ParseFormat(formatFlag)
				if err != nil {
					return err
				}
				req.Format = format
			}

			res, err := loader.Load(app.openStore(), req)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("load variables").
					WithResource(args[0]).
					WithSuggestion("Force the format with --format json or --format env").
					Wrap(err).
					BuildError()
			}

			printLoadResult(cmd, args[0], res)
			return nil
		}),
	}

	loadCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "input format: json, env or backup (default auto-detect)")
	loadCmd.Flags().BoolVarP(&replace, "replace", "r", false, "replace all variables instead of merging")
	loadCmd.Flags().StringVarP(&group, "group", "g", "", "add the loaded variables to this group")
	loadCmd.Flags().BoolVarP(&nest, "nest", "n", false, "import nested JSON objects as groups")

	return loadCmd
}

func printLoadResult(cmd *cobra.Command, file string, res loader.Result) {
	out := cmd.OutOrStdout()
	if res.IsBackup {
		fmt.Fprintln(out, VerboseStyle.Render(fmt.Sprintf("Detected backup file (timestamp: %s)", res.BackupTimestamp)))
	}
	if res.NestedGroups > 0 {
		fmt.Fprintln(out, VerboseStyle.Render(fmt.Sprintf("Detected and imported %d groups from nested structure", res.NestedGroups)))
	}
	if res.Replaced {
		fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Replaced environment variables (%d total)", res.Loaded)))
	} else {
		fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("Loaded %d environment variables from %s", res.Loaded, file)))
	}
	if res.Group != "" {
		fmt.Fprintf(out, "Variables added to group '%s'\n", res.Group)
	}
}

func newBackupCommand(app *App) *cobra.Command {
	var file string

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a timestamped backup of all variables",
		Long: `Write every variable to a backup file.

Without --file the backup is written to <data_dir>/backup_<YYYYMMDD_HHMMSS>.json.`,
		GroupID: groupTransfer,
		Args:    cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			path, err := backup.Backup(app.openStore(), file, app.cfg.Storage.DataDir, app.Clock)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("create backup").
					WithResource(file).
					Wrap(err).
					BuildError()
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Backup created: "+path))
			return nil
		}),
	}

	backupCmd.Flags().StringVarP(&file, "file", "f", "", "backup file path")

	return backupCmd
}

func newRestoreCommand(app *App) *cobra.Command {
	var merge bool

	restoreCmd := &cobra.Command{
		Use:     "restore FILE",
		Short:   "Restore variables from a backup file",
		Long:    "Restore variables from a backup file, replacing the store unless --merge is given.",
		GroupID: groupTransfer,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			res, err := backup.Restore(app.openStore(), args[0], merge)
			if err != nil {
				return issue.NewErrorContext().
					WithOperation("restore backup").
					WithResource(args[0]).
					Wrap(err).
					BuildError()
			}

			out := cmd.OutOrStdout()
			verb := "Restored"
			if res.Merged {
				verb = "Merged"
			}
			fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("%s %d variables from backup", verb, res.Restored)))
			if res.HasTimestamp {
				fmt.Fprintln(out, VerboseStyle.Render("Backup timestamp: "+res.Timestamp))
			}
			return nil
		}),
	}

	restoreCmd.Flags().BoolVarP(&merge, "merge", "m", false, "merge into the existing variables")

	return restoreCmd
}
