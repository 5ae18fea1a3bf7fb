// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/zxygithub/evm/internal/store"
)

const (
	// tableMargin is added to the widest key to size the separator line.
	tableMargin = 50
	// groupedWidth is the fixed separator width of grouped listings.
	groupedWidth = 70
)

// keyWidth returns the display width of the longest key.
func keyWidth(vars []store.Variable) int {
	width := 0
	for _, v := range vars {
		width = max(width, utf8.RuneCountInString(v.Key))
	}
	return width
}

// printVariableTable writes a titled "KEY = VALUE" table followed by footer.
func printVariableTable(w io.Writer, title string, vars []store.Variable, footer string) {
	width := keyWidth(vars)
	rule := SubtitleStyle.Render(strings.Repeat("-", width+tableMargin))

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(title))
	fmt.Fprintln(w, rule)
	printRows(w, vars, width)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, footer)
}

// printGroupedTable writes one section per group and a grand total.
func printGroupedTable(w io.Writer, sections []store.GroupListing) {
	total := 0
	rule := SubtitleStyle.Render(strings.Repeat("-", groupedWidth))
	banner := SubtitleStyle.Render(strings.Repeat("=", groupedWidth))

	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render("Environment Variables (by group):"))
	fmt.Fprintln(w, banner)
	for _, section := range sections {
		fmt.Fprintln(w)
		fmt.Fprintln(w, CmdStyle.Render("["+section.Group.String()+"]"))
		fmt.Fprintln(w, rule)
		printRows(w, section.Variables, keyWidth(section.Variables))
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "%d variables\n", len(section.Variables))
		total += len(section.Variables)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total: %d groups, %d variables\n", len(sections), total)
}

func printRows(w io.Writer, vars []store.Variable, width int) {
	for _, v := range vars {
		fmt.Fprintf(w, "%-*s = %s\n", width, v.Key, v.Value)
	}
}
