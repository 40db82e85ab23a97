package agents

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/agent-system/internal/messages"
)

const (
	// CatalogFile is the optional catalog at the root of an agent source.
	CatalogFile = "catalog.toml"
	// DefaultTag is shown for agents without a catalog entry.
	DefaultTag = "(agent)"
	// OrchestrationName is the agent describing how the others work together.
	OrchestrationName = "ORCHESTRATION"
	orchestrationTag  = "(how agents work together)"
)

// Catalog holds display metadata for agents in a source.
type Catalog struct {
	DefaultTag string                  `toml:"default_tag"`
	Agents     map[string]CatalogEntry `toml:"agents"`
}

// CatalogEntry is the metadata for one agent.
type CatalogEntry struct {
	Tag string `toml:"tag"`
}

// DefaultCatalog returns the catalog used when a source has none.
func DefaultCatalog() Catalog {
	return Catalog{
		DefaultTag: DefaultTag,
		Agents: map[string]CatalogEntry{
			OrchestrationName: {Tag: orchestrationTag},
		},
	}
}

// LoadCatalog reads catalog.toml from fsys and layers it over DefaultCatalog.
// A missing catalog is not an error. Unknown keys are rejected.
func LoadCatalog(fsys fs.FS) (Catalog, error) {
	catalog := DefaultCatalog()
	data, err := fs.ReadFile(fsys, CatalogFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return catalog, nil
		}
		return Catalog{}, fmt.Errorf(messages.AgentsReadCatalogFmt, CatalogFile, err)
	}

	var parsed Catalog
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return Catalog{}, fmt.Errorf(messages.AgentsInvalidCatalogFmt, CatalogFile, err)
	}

	if tag := strings.TrimSpace(parsed.DefaultTag); tag != "" {
		catalog.DefaultTag = tag
	}
	for name, entry := range parsed.Agents {
		catalog.Agents[name] = entry
	}
	return catalog, nil
}

// Tag returns the list tag for the named agent.
func (c Catalog) Tag(name string) string {
	if entry, ok := c.Agents[name]; ok {
		if tag := strings.TrimSpace(entry.Tag); tag != "" {
			return tag
		}
	}
	if tag := strings.TrimSpace(c.DefaultTag); tag != "" {
		return tag
	}
	return DefaultTag
}
