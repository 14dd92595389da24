package graph

import analyticsreporting "google.golang.org/api/analyticsreporting/v4"

// IngestResponse feeds every row of every report in one API response through
// IngestRow. Pages are ingested whole, in fetch order, so index assignment
// stays deterministic across the run.
func (x *Indexer) IngestResponse(resp *analyticsreporting.GetReportsResponse) {
	if resp == nil {
		return
	}
	for _, report := range resp.Reports {
		if report == nil || report.Data == nil {
			continue
		}
		for _, row := range report.Data.Rows {
			if row == nil {
				continue
			}
			var metricValues []string
			if len(row.Metrics) > 0 && row.Metrics[0] != nil {
				metricValues = row.Metrics[0].Values
			}
			x.IngestRow(row.Dimensions, metricValues)
		}
	}
}
