package main

import (
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/agent-system/internal/terminal"
)

var isTerminalWriter = terminal.IsTerminalWriter

// newColor returns a color that only emits escape codes when out is a terminal.
func newColor(out io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if !isTerminalWriter(out) {
		c.DisableColor()
	}
	return c
}
