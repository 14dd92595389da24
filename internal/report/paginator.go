package report

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agentic-research/pathgraph/api"
	"github.com/agentic-research/pathgraph/internal/graph"
)

// Paginator drains a Source page by page and folds every page into a fresh
// graph indexer. Pagination is strictly sequential: each cursor comes out of
// the previous response, so there is nothing to parallelize.
type Paginator struct {
	source Source
	log    *zap.Logger
}

// NewPaginator wraps a source. logger may be nil.
func NewPaginator(source Source, logger *zap.Logger) *Paginator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Paginator{source: source, log: logger}
}

// FetchAll runs the extraction to exhaustion and returns the finished graph.
//
// The loop starts at cursor "0" and keeps fetching as long as the first
// report of a response carries a NextPageToken, echoing that token verbatim.
// A response without one ends the run, so a source with a single page is
// fetched exactly once. Any fetch error aborts the run; there is no partial
// result, and re-running from scratch is the intended retry.
func (p *Paginator) FetchAll(ctx context.Context) (*api.Graph, error) {
	indexer := graph.NewIndexer()

	token := "0"
	for page := 1; ; page++ {
		resp, err := p.source.Fetch(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		next := ""
		if len(resp.Reports) > 0 && resp.Reports[0] != nil {
			next = resp.Reports[0].NextPageToken
		}

		indexer.IngestResponse(resp)
		p.log.Debug("ingested report page",
			zap.Int("page", page),
			zap.String("cursor", token),
			zap.String("next_cursor", next),
			zap.Int("paths", indexer.Len()),
		)

		if next == "" {
			return indexer.Graph(), nil
		}
		token = next
	}
}
