// Package version normalizes build versions.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/agent-system/internal/messages"
)

// IsDev reports whether raw names an unreleased development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == "dev"
}

// Normalize accepts vX.Y.Z or X.Y.Z and returns X.Y.Z.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf(messages.VersionRequired)
	}
	parsed, err := semver.StrictNewVersion(strings.TrimPrefix(trimmed, "v"))
	if err != nil {
		return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	return parsed.String(), nil
}
