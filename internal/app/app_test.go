package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/graphlib/internal/graphio"
	"github.com/vk/graphlib/internal/testutil"
)

const flowHCL = `
graph {
  compound = true
  label    = "flow"
}

node "group" {}

node "a" {
  parent = "group"
  value  = { width = 10 }
}

path {
  nodes = ["a", "b", "c"]
}
`

// setupAppTest writes files into a temp dir and returns an app that writes
// results into out and logs into logs.
func setupAppTest(t *testing.T, files map[string]string) (*App, string, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	cfg, err := NewConfig(Config{LogLevel: "debug", LogFormat: "text"})
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &testutil.SafeBuffer{}
	t.Cleanup(func() { testutil.DumpLogs(t, logs) })
	return NewApp(out, logs, cfg), dir, out, logs
}

func TestInspect(t *testing.T) {
	a, dir, out, logs := setupAppTest(t, map[string]string{"flow.hcl": flowHCL})

	require.NoError(t, a.Inspect(context.Background(), filepath.Join(dir, "flow.hcl")))

	assert.Equal(t, ""+
		"directed:   true\n"+
		"multigraph: false\n"+
		"compound:   true\n"+
		"label:      flow\n"+
		"nodes:      4\n"+
		"edges:      2\n"+
		"sources:    group, a\n"+
		"sinks:      group, c\n"+
		"roots:      group, b, c\n", out.String())
	assert.Contains(t, logs.String(), "HCL graph loading complete.")
}

func TestConvertRoundTrip(t *testing.T) {
	a, dir, out, _ := setupAppTest(t, map[string]string{"flow.hcl": flowHCL})
	ctx := context.Background()

	require.NoError(t, a.Convert(ctx, filepath.Join(dir, "flow.hcl"), graphio.FormatYAML))
	yamlPath := filepath.Join(dir, "flow.yaml")
	require.NoError(t, os.WriteFile(yamlPath, out.Bytes(), 0644))

	out.Reset()
	require.NoError(t, a.Convert(ctx, yamlPath, graphio.FormatJSON))
	g, err := graphio.DecodeJSON[any, any](out.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"group", "a", "b", "c"}, g.Nodes())
	p, ok := g.Parent("a")
	require.True(t, ok)
	assert.Equal(t, "group", p)
	label, _ := g.Node("a")
	assert.Equal(t, map[string]any{"width": float64(10)}, label)
}

func TestFilter(t *testing.T) {
	a, dir, out, _ := setupAppTest(t, map[string]string{"flow.hcl": flowHCL})

	require.NoError(t, a.Filter(context.Background(), filepath.Join(dir, "flow.hcl"), []string{"group"}, graphio.FormatJSON))
	g, err := graphio.DecodeJSON[any, any](out.Bytes())
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, g.Nodes())
	assert.True(t, g.HasEdge("b", "c"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestLayout(t *testing.T) {
	doc := `{"options": {"directed": true}, "nodes": [{"v": "a", "value": {"width": 3}}, {"v": "b"}],
		"edges": [{"v": "a", "w": "b", "value": null}]}`
	a, dir, out, _ := setupAppTest(t, map[string]string{"g.json": doc})

	require.NoError(t, a.Layout(context.Background(), filepath.Join(dir, "g.json"), 100, 10, graphio.FormatJSON))
	g, err := graphio.DecodeJSON[any, any](out.Bytes())
	require.NoError(t, err)

	label, _ := g.Node("b")
	assert.Equal(t, map[string]any{"x": float64(0), "y": float64(100)}, label)
	label, _ = g.Node("a")
	assert.Equal(t, map[string]any{"width": float64(3), "x": float64(0), "y": float64(0)}, label)
	edge, _ := g.Edge("a", "b")
	assert.Equal(t, map[string]any{"points": []any{
		map[string]any{"x": float64(0), "y": float64(0)},
		map[string]any{"x": float64(0), "y": float64(100)},
	}}, edge)
}

func TestLoadErrors(t *testing.T) {
	a, dir, _, _ := setupAppTest(t, map[string]string{"g.txt": "nope"})
	ctx := context.Background()

	_, err := a.Load(ctx, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = a.Load(ctx, filepath.Join(dir, "g.txt"))
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
