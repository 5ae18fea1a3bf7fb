// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/zxygithub/evm/internal/store"
	"github.com/zxygithub/evm/pkg/types"

	"github.com/spf13/cobra"
)

// newGroupCommands returns the commands that address variables through a group.
func newGroupCommands(app *App) []*cobra.Command {
	return []*cobra.Command{
		newGroupsCommand(app),
		newSetGroupedCommand(app),
		newGetGroupedCommand(app),
		newDeleteGroupedCommand(app),
		newListGroupCommand(app),
		newDeleteGroupCommand(app),
		newMoveGroupCommand(app),
	}
}

// groupLabel renders "[group]" for non-empty groups.
func groupLabel(group types.GroupName) string {
	if group == "" {
		return ""
	}
	return "[" + group.String() + "]"
}

func newGroupsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "groups",
		Short:   "List all groups",
		GroupID: groupGroups,
		Args:    cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			groups := app.openStore().Groups()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No groups found. All variables are in the default namespace.")
				return nil
			}

			rule := SubtitleStyle.Render(strings.Repeat("-", tableMargin))
			fmt.Fprintln(out)
			fmt.Fprintln(out, TitleStyle.Render("Available Groups:"))
			fmt.Fprintln(out, rule)
			for _, g := range groups {
				fmt.Fprintf(out, "%-30s (%d variables)\n", g.Group, g.Count)
			}
			fmt.Fprintln(out, rule)
			fmt.Fprintf(out, "Total: %d groups\n", len(groups))
			return nil
		}),
	}
}

func newSetGroupedCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "setg GROUP KEY VALUE",
		Short:   "Set an environment variable in a group",
		GroupID: groupGroups,
		Args:    cobra.ExactArgs(3),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			group, key, value := types.GroupName(args[0]), args[1], args[2]
			if err := app.openStore().SetGrouped(group, key, value); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Set: %s%s = %s", groupLabel(group), key, value)))
			return nil
		}),
	}
}

func newGetGroupedCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "getg GROUP KEY",
		Short: "Print the value of a grouped environment variable",
		Long: `Print the value of GROUP:KEY. When it is not set, the ungrouped KEY
is printed instead.`,
		GroupID: groupGroups,
		Args:    cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			value, err := app.openStore().GetGrouped(types.GroupName(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}),
	}
}

func newDeleteGroupedCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "deleteg GROUP KEY",
		Short:   "Delete an environment variable from a group",
		GroupID: groupGroups,
		Args:    cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			group, key := types.GroupName(args[0]), args[1]
			if err := app.openStore().DeleteGrouped(group, key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Deleted: "+groupLabel(group)+key))
			return nil
		}),
	}
}

func newListGroupCommand(app *App) *cobra.Command {
	var noPrefix bool

	listgCmd := &cobra.Command{
		Use:     "listg GROUP",
		Short:   "List the variables of a group",
		GroupID: groupGroups,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			opts := store.ListOptions{Group: types.GroupName(args[0]), StripPrefix: noPrefix}
			listVariables(cmd, app.openStore(), opts, false)
			return nil
		}),
	}

	listgCmd.Flags().BoolVar(&noPrefix, "no-prefix", false, "hide the group prefix")

	return listgCmd
}

func newDeleteGroupCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete-group GROUP",
		Short:   "Delete a group and all of its variables",
		GroupID: groupGroups,
		Args:    cobra.ExactArgs(1),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			group := types.GroupName(args[0])
			removed, err := app.openStore().DeleteGroup(group)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(
				fmt.Sprintf("Deleted group '%s' and all its variables (%d total)", group, removed)))
			return nil
		}),
	}
}

func newMoveGroupCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move-group KEY GROUP",
		Short: "Move an ungrouped variable into a group",
		Long: `Move KEY into GROUP, storing it as GROUP:KEY. KEY is the stored name
exactly as listed.`,
		GroupID: groupGroups,
		Args:    cobra.ExactArgs(2),
		RunE: app.runE(func(cmd *cobra.Command, args []string) error {
			key := args[0]
			newKey, err := app.openStore().MoveToGroup(key, types.GroupName(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render(fmt.Sprintf("Moved: %s -> %s", key, newKey)))
			return nil
		}),
	}
}
