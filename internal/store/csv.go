package store

import (
	"fmt"

	"github.com/agentic-research/pathgraph/api"
	"github.com/agentic-research/pathgraph/internal/tabular"
)

// SaveCSV writes the two flat files consumers expect: one path per line in
// pathsFile (first-seen order, line number = index), and one
// from,to,count record per connection in connectionsFile.
func SaveCSV(g *api.Graph, pathsFile, connectionsFile string) error {
	pathRecords := make([]tabular.Record, len(g.Paths))
	for i, p := range g.Paths {
		pathRecords[i] = tabular.Record{p}
	}
	if err := tabular.Write(pathsFile, pathRecords); err != nil {
		return fmt.Errorf("write paths: %w", err)
	}

	connRecords := make([]tabular.Record, len(g.Connections))
	for i, c := range g.Connections {
		connRecords[i] = tabular.Record{c.From, c.To, c.Count}
	}
	if err := tabular.Write(connectionsFile, connRecords); err != nil {
		return fmt.Errorf("write connections: %w", err)
	}
	return nil
}

// LoadCSV reads files written by SaveCSV back into a graph.
func LoadCSV(pathsFile, connectionsFile string) (*api.Graph, error) {
	g := &api.Graph{}

	paths, err := tabular.Read(pathsFile, true)
	if err != nil {
		return nil, fmt.Errorf("read paths: %w", err)
	}
	for i, v := range paths {
		p, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("paths record %d: expected a path string, got %T", i, v)
		}
		g.Paths = append(g.Paths, p)
	}

	conns, err := tabular.Read(connectionsFile, false)
	if err != nil {
		return nil, fmt.Errorf("read connections: %w", err)
	}
	for i, v := range conns {
		record, ok := v.(tabular.Record)
		if !ok || len(record) != 3 {
			return nil, fmt.Errorf("connections record %d: expected 3 fields", i)
		}
		from, okFrom := record[0].(int64)
		to, okTo := record[1].(int64)
		count, okCount := record[2].(int64)
		if !okFrom || !okTo || !okCount {
			return nil, fmt.Errorf("connections record %d: non-numeric field", i)
		}
		if int(from) >= len(g.Paths) || int(to) >= len(g.Paths) || from < 0 || to < 0 {
			return nil, fmt.Errorf("connections record %d: index out of range for %d paths", i, len(g.Paths))
		}
		g.Connections = append(g.Connections, api.Connection{
			From:  int(from),
			To:    int(to),
			Count: count,
		})
	}

	return g, nil
}
