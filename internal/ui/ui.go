// Package ui holds terminal output helpers shared by the CLI commands.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// DarkTheme selects brighter foreground colors for dark terminals.
var DarkTheme bool

// PrintTable renders a boxed table with a header row.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to render table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

