package graphhcl

import (
	"context"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vk/graphlib/internal/ctxlog"
	"github.com/vk/graphlib/internal/graph"
)

// ErrDuplicateGraph is returned when more than one graph block is found.
var ErrDuplicateGraph = errors.New("duplicate graph block")

// Loader builds graphs from HCL files.
type Loader struct{}

// NewLoader creates a new HCL graph loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and builds one graph from them.
func (l *Loader) Load(ctx context.Context, paths ...string) (*graph.Graph[any, any], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL graph loader started.", "path_count", len(paths))

	files, err := findAllHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	// hclparse.Parser caches files and is not safe for concurrent use, so every
	// file gets its own parser.
	roots := make([]*fileRoot, len(files))
	var eg errgroup.Group
	for i, file := range files {
		eg.Go(func() error {
			root, err := parseFile(file)
			roots[i] = root
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	def := &fileRoot{}
	for _, root := range roots {
		def.Graphs = append(def.Graphs, root.Graphs...)
		def.Nodes = append(def.Nodes, root.Nodes...)
		def.Edges = append(def.Edges, root.Edges...)
		def.Paths = append(def.Paths, root.Paths...)
	}

	g, err := build(def)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL graph loading complete.", "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

// LoadBytes builds a graph from a single in-memory HCL document.
func (l *Loader) LoadBytes(src []byte, filename string) (*graph.Graph[any, any], error) {
	root, err := decode(hclparse.NewParser(), src, filename)
	if err != nil {
		return nil, err
	}
	return build(root)
}

func parseFile(path string) (*fileRoot, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read HCL file %s", path)
	}
	return decode(hclparse.NewParser(), src, path)
}

func decode(parser *hclparse.Parser, src []byte, filename string) (*fileRoot, error) {
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse HCL file %s", filename)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to decode HCL file %s", filename)
	}
	return &root, nil
}

// build turns a merged definition into a graph: flags, nodes, parents, edges,
// then paths.
func build(def *fileRoot) (*graph.Graph[any, any], error) {
	if len(def.Graphs) > 1 {
		return nil, errors.Wrapf(ErrDuplicateGraph, "found %d", len(def.Graphs))
	}

	opts := []graph.Option{graph.WithDirected(true)}
	var label *string
	if len(def.Graphs) == 1 {
		gb := def.Graphs[0]
		if gb.Directed != nil {
			opts = append(opts, graph.WithDirected(*gb.Directed))
		}
		opts = append(opts, graph.WithMultigraph(gb.Multigraph), graph.WithCompound(gb.Compound))
		label = gb.Label
	}
	g := graph.New[any, any](opts...)
	if label != nil {
		g.SetGraph(*label)
	}

	for _, n := range def.Nodes {
		value, ok, err := optionalValue(n.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "node %q", n.Name)
		}
		if ok {
			g.SetNode(n.Name, value)
		} else {
			g.SetNode(n.Name)
		}
	}
	for _, n := range def.Nodes {
		if n.Parent == "" {
			continue
		}
		if err := g.SetParent(n.Name, n.Parent); err != nil {
			return nil, errors.Wrapf(err, "node %q", n.Name)
		}
	}

	for _, e := range def.Edges {
		value, ok, err := optionalValue(e.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %q -> %q", e.V, e.W)
		}
		if ok {
			g.SetNamedEdge(e.V, e.W, e.Name, value)
		} else {
			g.SetNamedEdge(e.V, e.W, e.Name)
		}
	}

	for _, p := range def.Paths {
		value, ok, err := optionalValue(p.Value)
		if err != nil {
			return nil, errors.Wrapf(err, "path %v", p.Nodes)
		}
		if ok {
			g.SetPath(p.Nodes, value)
		} else {
			g.SetPath(p.Nodes)
		}
	}
	return g, nil
}

func optionalValue(expr hcl.Expression) (any, bool, error) {
	if !isExprDefined(expr) {
		return nil, false, nil
	}
	value, err := evalValue(expr)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl
// files found. Missing paths are skipped.
func findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(err, "error accessing path %s", path)
		}

		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return allFiles, nil
}
