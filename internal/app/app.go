package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/vk/graphlib/internal/ctxlog"
	"github.com/vk/graphlib/internal/graph"
	"github.com/vk/graphlib/internal/graphhcl"
	"github.com/vk/graphlib/internal/graphio"
	"github.com/vk/graphlib/internal/layout"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	hcl    *graphhcl.Loader
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW, each App with its own isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		hcl:    graphhcl.NewLoader(),
	}
}

// Context returns ctx carrying the App's logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Load reads the graph at path. Directories and .hcl files are HCL
// definitions; .json, .yaml and .yml files are serialized documents.
func (a *App) Load(ctx context.Context, path string) (*graph.Graph[any, any], error) {
	ctx = ctxlog.With(a.Context(ctx), "path", path)
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "open graph")
	}
	if info.IsDir() || filepath.Ext(path) == ".hcl" {
		logger.Debug("Loading HCL graph definition.")
		return a.hcl.Load(ctx, path)
	}

	format, err := graphio.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read graph")
	}
	logger.Debug("Decoding graph document.", "format", format, "bytes", len(data))
	return graphio.Decode[any, any](format, data)
}

// Inspect prints the flags, sizes and boundary nodes of the graph at path.
func (a *App) Inspect(ctx context.Context, path string) error {
	g, err := a.Load(ctx, path)
	if err != nil {
		return err
	}

	label, _ := g.GraphLabel()
	rows := [][2]string{
		{"directed", fmt.Sprint(g.IsDirected())},
		{"multigraph", fmt.Sprint(g.IsMultigraph())},
		{"compound", fmt.Sprint(g.IsCompound())},
		{"label", label},
		{"nodes", fmt.Sprint(g.NodeCount())},
		{"edges", fmt.Sprint(g.EdgeCount())},
		{"sources", strings.Join(g.Sources(), ", ")},
		{"sinks", strings.Join(g.Sinks(), ", ")},
		{"roots", strings.Join(g.Children(""), ", ")},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(a.outW, "%-11s %s\n", row[0]+":", row[1]); err != nil {
			return err
		}
	}
	return nil
}

// Convert writes the graph at path in the given format.
func (a *App) Convert(ctx context.Context, path string, to graphio.Format) error {
	g, err := a.Load(ctx, path)
	if err != nil {
		return err
	}
	return a.write(g, to)
}

// Filter writes the graph at path without the excluded nodes. Excluding a
// compound node also excludes everything nested in it.
func (a *App) Filter(ctx context.Context, path string, exclude []string, to graphio.Format) error {
	g, err := a.Load(ctx, path)
	if err != nil {
		return err
	}

	drop := make(map[string]struct{}, len(exclude))
	for _, v := range exclude {
		drop[v] = struct{}{}
	}
	filtered := g.FilterNodes(func(v string) bool {
		_, excluded := drop[v]
		return !excluded
	})
	a.logger.Debug("Graph filtered.", "before", g.NodeCount(), "after", filtered.NodeCount())
	return a.write(filtered, to)
}

// Layout ranks the graph at path, merges x/y into node labels and points into
// edge labels, and writes the result.
func (a *App) Layout(ctx context.Context, path string, rankSep, nodeSep float64, to graphio.Format) error {
	g, err := a.Load(ctx, path)
	if err != nil {
		return err
	}

	ranked := &layout.Ranked[any, any]{
		RankSep: rankSep,
		NodeSep: nodeSep,
		PlaceNode: func(label any, at layout.Point) any {
			return layout.MergeMap(label, map[string]any{"x": at.X, "y": at.Y})
		},
		PlaceEdge: func(label any, points []layout.Point) any {
			return layout.MergeMap(label, map[string]any{"points": points})
		},
	}
	if err := ranked.Layout(a.Context(ctx), g); err != nil {
		return errors.Wrap(err, "layout")
	}
	return a.write(g, to)
}

func (a *App) write(g *graph.Graph[any, any], to graphio.Format) error {
	data, err := graphio.Encode(to, g)
	if err != nil {
		return err
	}
	if _, err := a.outW.Write(data); err != nil {
		return errors.Wrap(err, "write graph")
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(a.outW, "\n")
	}
	return err
}
