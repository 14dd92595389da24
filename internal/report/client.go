package report

import (
	"context"
	"fmt"
	"os"

	analyticsreporting "google.golang.org/api/analyticsreporting/v4"
	"google.golang.org/api/option"
)

// Client is the real Source: a Google Analytics Reporting API v4 view queried
// with a fixed page-path report request.
type Client struct {
	svc       *analyticsreporting.Service
	viewID    string
	startDate string
}

// NewClient builds a read-only reporting client authenticated with a service
// account JSON key. startDate is a GA date expression ("2024-01-01",
// "yesterday", "30daysAgo"); the range always ends at "today".
func NewClient(ctx context.Context, viewID, keyFile, startDate string) (*Client, error) {
	if _, err := os.Stat(keyFile); err != nil {
		return nil, fmt.Errorf("service account key %s: %w", keyFile, err)
	}

	svc, err := analyticsreporting.NewService(ctx,
		option.WithCredentialsFile(keyFile),
		option.WithScopes(analyticsreporting.AnalyticsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create reporting service: %w", err)
	}

	return &Client{
		svc:       svc,
		viewID:    viewID,
		startDate: startDate,
	}, nil
}

// Fetch implements Source. Every request is identical except for the cursor:
// same view, date range, entrance filter, metric and dimensions.
func (c *Client) Fetch(ctx context.Context, pageToken string) (*analyticsreporting.GetReportsResponse, error) {
	req := &analyticsreporting.GetReportsRequest{
		ReportRequests: []*analyticsreporting.ReportRequest{{
			ViewId:            c.viewID,
			PageToken:         pageToken,
			PageSize:          pageSize,
			FiltersExpression: entranceFilter,
			DateRanges: []*analyticsreporting.DateRange{
				{StartDate: c.startDate, EndDate: "today"},
			},
			Metrics: []*analyticsreporting.Metric{
				{Expression: "ga:pageviews"},
			},
			Dimensions: []*analyticsreporting.Dimension{
				{Name: "ga:date"},
				{Name: "ga:previousPagePath"},
				{Name: "ga:pagePath"},
			},
		}},
	}

	resp, err := c.svc.Reports.BatchGet(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("batchGet view %s page %q: %w", c.viewID, pageToken, err)
	}
	return resp, nil
}
