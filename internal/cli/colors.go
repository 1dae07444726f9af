package cli

import "github.com/fatih/color"

// Output colors mirror the rich conventions of the generated scripts:
// green for created artifacts, red for errors, cyan for summary labels,
// faint for secondary file listings.
var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	statusColor  = color.New(color.FgCyan)
	dimColor     = color.New(color.Faint)
	boldColor    = color.New(color.Bold)
)
