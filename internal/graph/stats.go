package graph

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/agentic-research/pathgraph/api"
)

// Stats summarizes a finished graph. Distinct source/target counts are built
// with roaring bitmaps over the dense index space.
func Stats(g *api.Graph) api.Stats {
	sources := roaring.New()
	targets := roaring.New()

	var total int64
	for _, c := range g.Connections {
		sources.Add(uint32(c.From))
		targets.Add(uint32(c.To))
		total += c.Count
	}

	return api.Stats{
		PathCount:       len(g.Paths),
		ConnectionCount: len(g.Connections),
		DistinctSources: int(sources.GetCardinality()),
		DistinctTargets: int(targets.GetCardinality()),
		TotalCount:      total,
	}
}
