// Package report fetches navigation data from the Analytics Reporting API v4
// and drives the page-by-page extraction loop.
package report

import (
	"context"

	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
)

// Source is one report backend. Fetch returns the page at the given cursor;
// pageToken is opaque and must be echoed back exactly as the server produced
// it. The first fetch of a run uses "0".
type Source interface {
	Fetch(ctx context.Context, pageToken string) (*analyticsreporting.GetReportsResponse, error)
}

// pageSize is fixed: the API caps path reports at 1000 rows per page anyway,
// and the cursor loop makes the page boundary invisible to callers.
const pageSize = 1000

// entranceFilter drops rows whose previous page is the synthetic "(entrance)"
// marker; those rows have no real transition origin.
const entranceFilter = "ga:previousPagePath!=(entrance)"
