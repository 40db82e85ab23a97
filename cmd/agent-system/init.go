package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/conn-castle/agent-system/internal/agents"
	"github.com/conn-castle/agent-system/internal/install"
	"github.com/conn-castle/agent-system/internal/messages"
)

var (
	installRun  = install.Run
	agentSource = agents.FS
	homeDir     = homedir.Dir
	getwd       = os.Getwd
)

// initOptions is built once from flags and not modified afterwards.
type initOptions struct {
	global bool
	force  bool
}

func newInitCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:                messages.InitUse,
		Short:              messages.InitShort,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.global, "global", "g", false, messages.InitFlagGlobal)
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, messages.InitFlagForce)

	return cmd
}

func runInit(out io.Writer, opts initOptions) error {
	target, err := resolveInitTarget(opts.global)
	if err != nil {
		return err
	}
	source, err := agentSource()
	if err != nil {
		return err
	}
	payloads, err := agents.List(source)
	if err != nil {
		return err
	}
	result, err := installRun(install.Options{
		Target:   target,
		Payloads: payloads,
		Source:   source,
		Force:    opts.force,
		System:   install.RealSystem{},
	})
	if err != nil {
		return err
	}
	return reportInstall(out, result, opts)
}

// resolveInitTarget returns ~/.claude/agents for global installs and ./agents otherwise.
func resolveInitTarget(global bool) (string, error) {
	if global {
		home, err := homeDir()
		if err != nil {
			return "", fmt.Errorf(messages.InitResolveHomeFmt, err)
		}
		return filepath.Join(home, ".claude", "agents"), nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", fmt.Errorf(messages.InitResolveCwdFmt, err)
	}
	return filepath.Join(cwd, "agents"), nil
}

// reportInstall prints one line per payload followed by the summary.
func reportInstall(out io.Writer, result install.Result, opts initOptions) error {
	copyColor := newColor(out, color.FgGreen)
	skipColor := newColor(out, color.FgYellow)
	for _, item := range result.Items {
		var err error
		switch item.Outcome {
		case install.OutcomeSkipped:
			_, err = fmt.Fprintf(out, messages.InstallSkipLineFmt, skipColor.Sprint(item.Outcome), item.File)
		default:
			_, err = fmt.Fprintf(out, messages.InstallCopyLineFmt, copyColor.Sprint(item.Outcome), item.File)
		}
		if err != nil {
			return err
		}
	}

	if opts.force {
		_, err := fmt.Fprintf(out, messages.InstallForceDoneFmt, result.Copied, result.Target)
		return err
	}
	if _, err := fmt.Fprintf(out, messages.InstallDoneFmt, result.Copied, result.Skipped, result.Target); err != nil {
		return err
	}
	if !opts.global {
		if _, err := skipColor.Fprint(out, messages.InstallGlobalTip); err != nil {
			return err
		}
	}
	return nil
}
