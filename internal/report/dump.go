package report

import (
	"context"
	"fmt"
	"io"

	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
)

// Dumped wraps a source so that every page it serves is also written to w
// via DumpResponse. Used by the CLI's --dump-response debug flag.
func Dumped(source Source, w io.Writer) Source {
	return &dumpedSource{source: source, w: w}
}

type dumpedSource struct {
	source Source
	w      io.Writer
}

func (s *dumpedSource) Fetch(ctx context.Context, pageToken string) (*analyticsreporting.GetReportsResponse, error) {
	resp, err := s.source.Fetch(ctx, pageToken)
	if err != nil {
		return nil, err
	}
	DumpResponse(s.w, resp)
	return resp, nil
}

// DumpResponse writes a raw API response to w in a readable per-row layout,
// pairing dimension and metric values with their column headers. Debug aid
// for inspecting what a view actually returns; not part of the pipeline.
func DumpResponse(w io.Writer, resp *analyticsreporting.GetReportsResponse) {
	if resp == nil {
		return
	}
	for _, report := range resp.Reports {
		if report == nil || report.Data == nil {
			continue
		}

		var dimensionHeaders []string
		var metricHeaders []*analyticsreporting.MetricHeaderEntry
		if report.ColumnHeader != nil {
			dimensionHeaders = report.ColumnHeader.Dimensions
			if report.ColumnHeader.MetricHeader != nil {
				metricHeaders = report.ColumnHeader.MetricHeader.MetricHeaderEntries
			}
		}

		for i, row := range report.Data.Rows {
			if row == nil {
				continue
			}
			fmt.Fprintf(w, "%d.\n", i)
			for j, dimension := range row.Dimensions {
				if j < len(dimensionHeaders) {
					fmt.Fprintf(w, "%s: %s\n", dimensionHeaders[j], dimension)
				}
			}
			for _, values := range row.Metrics {
				if values == nil {
					continue
				}
				for j, value := range values.Values {
					if j < len(metricHeaders) {
						fmt.Fprintf(w, "%s=%s\n", metricHeaders[j].Name, value)
					}
				}
			}
		}
	}
}
