package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Status lines go to stderr so stdout carries only command output.

func printSuccess(cmd *cobra.Command, format string, args ...any) {
	pterm.Success.WithWriter(cmd.ErrOrStderr()).Printfln(format, args...)
}

func printInfo(cmd *cobra.Command, format string, args ...any) {
	pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln(format, args...)
}
