package main

import (
	"bytes"
	"io/fs"
	"testing"
	"testing/fstest"
)

func withAgentSource(t *testing.T, fsys fs.FS) {
	t.Helper()
	orig := agentSource
	agentSource = func() (fs.FS, error) { return fsys, nil }
	t.Cleanup(func() { agentSource = orig })
}

func withDirs(t *testing.T, cwd string, home string) {
	t.Helper()
	origGetwd := getwd
	origHome := homeDir
	getwd = func() (string, error) { return cwd, nil }
	homeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() {
		getwd = origGetwd
		homeDir = origHome
	})
}

func sourceAB() fstest.MapFS {
	return fstest.MapFS{
		"A.md":         {Data: []byte("source A\n")},
		"B.md":         {Data: []byte("source B\n")},
		"catalog.toml": {Data: []byte("default_tag = \"(agent)\"\n")},
	}
}

// run executes the CLI and returns stdout, stderr, and the exit code (-1 when exit was not called).
func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := -1
	runMain(append([]string{"agent-system"}, args...), &stdout, &stderr, func(c int) { code = c })
	return stdout.String(), stderr.String(), code
}
