// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/pkg/types"

	"github.com/spf13/cobra"
)

// newVariableCommands returns the commands that act on single variables and on
// the whole mapping.
func newVariableCommands(app *App) []*cobra.Command {
	return []*cobra.Command{
		newSetCommand(app),
		newGetCommand(app),
		newDeleteCommand(app),
		newRenameCommand(app),
		newCopyCommand(app),
		newClearCommand(app),
		newListCommand(app),
		newSearchCommand(app),
	}
}

func newSetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "set KEY VALUE",
		Short:   "Set an environment variable",
		GroupID: groupVariables,
		Args:    cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := app.openStore().Set(key, value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Set: %s=%s", key, value)))
			return nil
		}),
	}
}

func newGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "get KEY",
		Short:   "Print the value of an environment variable",
		GroupID: groupVariables,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			value, err := app.openStore().Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}),
	}
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete KEY",
		Aliases: []string{"rm"},
		Short:   "Delete an environment variable",
		GroupID: groupVariables,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			if err := app.openStore().Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Deleted: "+args[0]))
			return nil
		}),
	}
}

func newRenameCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rename OLD NEW",
		Short:   "Rename an environment variable",
		Long:    "Rename an environment variable. The new name must not be in use.",
		GroupID: groupVariables,
		Args:    cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			if err := app.openStore().Rename(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Renamed: %s -> %s", args[0], args[1])))
			return nil
		}),
	}
}

func newCopyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "copy SRC DST",
		Aliases: []string{"cp"},
		Short:   "Copy an environment variable",
		Long:    "Copy an environment variable. An existing destination is overwritten.",
		GroupID: groupVariables,
		Args:    cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			if err := app.openStore().Copy(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Copied: %s -> %s", args[0], args[1])))
			return nil
		}),
	}
}

func newClearCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "clear",
		Short:   "Remove all environment variables",
		GroupID: groupVariables,
		Args:    cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			removed, err := app.openStore().Clear()
			if err != nil {
				return err
			}
			if removed == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No environment variables to clear")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("All environment variables cleared"))
			return nil
		}),
	}
}

func newListCommand(app *App) *cobra.Command {
	var (
		group      string
		showGroups bool
		noPrefix   bool
	)

	listCmd := &cobra.Command{
		Use:     "list [PATTERN]",
		Aliases: []string{"ls"},
		Short:   "List environment variables",
		Long: `List environment variables, optionally filtered.

PATTERN keeps keys containing it, case-insensitively. --group keeps only the
keys of one group and takes precedence over PATTERN.`,
		GroupID: groupVariables,
		Args:    cobra.MaximumNArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			opts := store.ListOptions{Group: types.GroupName(group), StripPrefix: noPrefix}
			if len(args) == 1 {
				opts.Pattern = args[0]
			}
			listVariables(cmd, app.openStore(), opts, showGroups)
			return nil
		}),
	}

	listCmd.Flags().StringVarP(&group, "group", "g", "", "only list variables of this group")
	listCmd.Flags().BoolVar(&showGroups, "show-groups", false, "list variables grouped by namespace")
	listCmd.Flags().BoolVar(&noPrefix, "no-prefix", false, "hide the group prefix (with --group)")

	return listCmd
}

// listVariables prints the filtered table, or the message explaining why it is empty.
func listVariables(cmd *cobra.Command, s *store.Store, opts store.ListOptions, showGroups bool) {
	out := cmd.OutOrStdout()
	if s.Len() == 0 {
		fmt.Fprintln(out, "No environment variables set")
		return
	}

	if showGroups {
		sections := s.ListGrouped(opts)
		if len(sections) == 0 {
			fmt.Fprintln(out, emptyListMessage(opts))
			return
		}
		printGroupedTable(out, sections)
		return
	}

	vars := s.List(opts)
	if len(vars) == 0 {
		fmt.Fprintln(out, emptyListMessage(opts))
		return
	}
	printVariableTable(out, "Environment Variables:", vars, fmt.Sprintf("Total: %d variables", len(vars)))
}

func emptyListMessage(opts store.ListOptions) string {
	switch {
	case opts.Group != "":
		return fmt.Sprintf("No environment variables in group '%s'", opts.Group)
	case opts.Pattern != "":
		return fmt.Sprintf("No environment variables match pattern '%s'", opts.Pattern)
	default:
		return "No environment variables to display"
	}
}

func newSearchCommand(app *App) *cobra.Command {
	var inValues bool

	searchCmd := &cobra.Command{
		Use:     "search PATTERN",
		Short:   "Search variables by key, and optionally by value",
		GroupID: groupVariables,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			results := app.openStore().Search(pattern, inValues)
			if len(results) == 0 {
				where := "keys"
				if inValues {
					where = "keys and values"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "No environment variables match '%s' in %s\n", pattern, where)
				return nil
			}
			printVariableTable(cmd.OutOrStdout(), fmt.Sprintf("Search results for '%s':", pattern), results,
				fmt.Sprintf("Total: %d matches", len(results)))
			return nil
		}),
	}

	searchCmd.Flags().BoolVar(&inValues, "value", false, "also match against values")

	return searchCmd
}
