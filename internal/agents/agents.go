// Package agents exposes the bundled agent definitions and enumerates them.
package agents

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/conn-castle/agent-system/internal/messages"
)

// Extension is the file extension recognized as an agent definition.
const Extension = ".md"

const definitionsDir = "definitions"

//go:embed definitions
var definitionsFS embed.FS

// ErrUnreadable reports that the agent source or one of its payloads could not be read.
var ErrUnreadable = errors.New(messages.InstallSourceUnreadable)

// Payload identifies one agent definition in a source.
type Payload struct {
	// Name is the file name without the extension, e.g. "ORCHESTRATION".
	Name string
	// File is the file name relative to the source root, e.g. "ORCHESTRATION.md".
	File string
}

// FS returns the bundled agent definitions rooted at the definitions directory.
func FS() (fs.FS, error) {
	sub, err := fs.Sub(definitionsFS, definitionsDir)
	if err != nil {
		return nil, fmt.Errorf(messages.AgentsOpenSourceFmt, err)
	}
	return sub, nil
}

// List returns the agent payloads at the root of fsys in directory order.
// Only regular files with the .md extension are included.
func List(fsys fs.FS) ([]Payload, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: "+messages.AgentsReadSourceFmt, ErrUnreadable, err)
	}
	payloads := make([]Payload, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		file := entry.Name()
		if !strings.HasSuffix(file, Extension) {
			continue
		}
		payloads = append(payloads, Payload{
			Name: strings.TrimSuffix(file, Extension),
			File: file,
		})
	}
	return payloads, nil
}

// Names returns the payload names in order.
func Names(payloads []Payload) []string {
	names := make([]string, len(payloads))
	for i, p := range payloads {
		names[i] = p.Name
	}
	return names
}
