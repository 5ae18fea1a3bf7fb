// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newInfoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show version and store details",
		Args:  cobra.NoArgs,
		RunE: app.runE(func(cmd *cobra.Command, _ []string) error {
			s := app.openStore()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, TitleStyle.Render("evm")+SubtitleStyle.Render(" - Environment Variable Manager"))
			fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Version"), getVersionString())
			fmt.Fprintf(out, "%s: %s/%s (%s)\n", CmdStyle.Render("Platform"), runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Store file"), s.Path())
			fmt.Fprintf(out, "%s: %d\n", CmdStyle.Render("Variables"), s.Len())
			fmt.Fprintf(out, "%s: %d\n", CmdStyle.Render("Groups"), len(s.Groups()))
			if app.cfg.Source != "" {
				fmt.Fprintf(out, "%s: %s\n", CmdStyle.Render("Config file"), app.cfg.Source)
			}
			return nil
		}),
	}
}
