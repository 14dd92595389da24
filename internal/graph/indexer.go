// Package graph builds the navigation graph incrementally from report rows:
// distinct canonical paths get dense first-seen indices, and every accepted
// row becomes one weighted directed connection between two of those indices.
package graph

import (
	"strconv"

	"github.com/agentic-research/pathgraph/api"
	"github.com/agentic-research/pathgraph/internal/normalize"
)

// Indexer accumulates paths and connections for a single extraction run.
// Construct a fresh one per run; state never leaks across runs.
type Indexer struct {
	paths       []string
	index       map[string]int // canonical path -> position in paths
	connections []api.Connection
}

func NewIndexer() *Indexer {
	return &Indexer{
		index: make(map[string]int),
	}
}

// IngestRow processes one report row. dimensions is the row's ordered
// dimension values (date, previous path, current path); metricValues is the
// first metric group's ordered values, of which only the first is used.
//
// Rows the indexer cannot use are skipped without error: fewer than three
// dimensions, a previous or current path that is not a site-relative path,
// a self-loop (both normalize to the same canonical path), or a first metric
// value that does not parse as an integer. The source legitimately emits
// such rows.
func (x *Indexer) IngestRow(dimensions, metricValues []string) {
	if len(dimensions) < 3 {
		return
	}

	prev, ok := normalize.Clean(dimensions[1])
	if !ok {
		return
	}
	current, ok := normalize.Clean(dimensions[2])
	if !ok {
		return
	}
	if prev == current {
		return
	}

	if len(metricValues) == 0 {
		return
	}
	count, err := strconv.ParseInt(metricValues[0], 10, 64)
	if err != nil {
		return
	}

	x.connections = append(x.connections, api.Connection{
		From:  x.indexOf(prev),
		To:    x.indexOf(current),
		Count: count,
	})
}

// indexOf returns the stable index of a canonical path, assigning the next
// free one on first sight. Indices are dense and never reassigned.
func (x *Indexer) indexOf(path string) int {
	if i, ok := x.index[path]; ok {
		return i
	}
	i := len(x.paths)
	x.paths = append(x.paths, path)
	x.index[path] = i
	return i
}

// Len returns how many distinct paths have been indexed so far.
func (x *Indexer) Len() int {
	return len(x.paths)
}

// Graph returns the accumulated state. The returned slices are the indexer's
// own backing storage; callers take ownership and must not keep ingesting.
func (x *Indexer) Graph() *api.Graph {
	return &api.Graph{
		Paths:       x.paths,
		Connections: x.connections,
	}
}
