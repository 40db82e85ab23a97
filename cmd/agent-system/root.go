package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/agent-system/internal/messages"
)

const (
	flagHelp      = "--help"
	flagHelpShort = "-h"
	flagVersion   = "--version"
)

// newRootCmd dispatches on the first argument only, so unknown flags before a verb are
// reported as unknown commands rather than flag errors.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return printHelp(cmd.OutOrStdout())
			}
			switch args[0] {
			case flagHelp, flagHelpShort:
				return printHelp(cmd.OutOrStdout())
			case flagVersion:
				_, err := fmt.Fprintf(cmd.OutOrStdout(), messages.VersionLineFmt, cmd.Version)
				return err
			}
			return unknownCommand(cmd, args[0])
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != cmd {
			defaultHelp(c, args)
			return
		}
		_ = printHelp(c.OutOrStdout())
	})

	cmd.AddCommand(newInitCmd(), newListCmd())
	return cmd
}

func printHelp(out io.Writer) error {
	_, err := fmt.Fprint(out, messages.HelpText)
	return err
}

// unknownCommand reports an unrecognized verb and exits 1 without touching the filesystem.
func unknownCommand(cmd *cobra.Command, verb string) error {
	errOut := cmd.ErrOrStderr()
	errColor := newColor(errOut, color.FgRed)
	_, _ = errColor.Fprintf(errOut, messages.UnknownCommandFmt, verb)
	_ = printHelp(cmd.OutOrStdout())
	return &SilentExitError{Code: 1}
}
