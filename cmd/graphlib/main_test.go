package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/graphlib/internal/cli"
	"github.com/vk/graphlib/internal/testutil"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	return filepath.Join(testutil.WriteFiles(t, map[string]string{name: content}), name)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"-h"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error for help")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.Contains(t, out.String(), "layout")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"inspect", "--this-is-not-a-valid-flag", "g.json"}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_InvalidHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Missing closing brace.
	path := writeFile(t, "main.hcl", `
		node "a" {
			value = 1
	`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"inspect", path})

	// --- Assert ---
	require.Error(t, err)
	var exitErr *cli.ExitError
	require.NotErrorAs(t, err, &exitErr, "load failures are not usage errors")
	require.Contains(t, err.Error(), "failed to parse")
}

func TestRun_Inspect(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := writeFile(t, "g.json", `{"options":{"directed":true},"nodes":[{"v":"a"},{"v":"b"}],"edges":[{"v":"a","w":"b"}]}`)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(out, errOut, []string{"inspect", path})

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "nodes:      2")
	require.Contains(t, out.String(), "sources:    a")
}
