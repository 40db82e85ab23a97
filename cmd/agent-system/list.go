package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conn-castle/agent-system/internal/agents"
	"github.com/conn-castle/agent-system/internal/messages"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:                messages.ListUse,
		Short:              messages.ListShort,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout())
		},
	}
}

// runList prints each bundled agent with its catalog tag.
func runList(out io.Writer) error {
	source, err := agentSource()
	if err != nil {
		return err
	}
	payloads, err := agents.List(source)
	if err != nil {
		return err
	}
	catalog, err := agents.LoadCatalog(source)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(out, messages.ListHeader); err != nil {
		return err
	}
	for _, name := range agents.Names(payloads) {
		if _, err := fmt.Fprintf(out, messages.ListLineFmt, name, catalog.Tag(name)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out)
	return err
}
