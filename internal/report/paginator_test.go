package report

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	analyticsreporting "google.golang.org/api/analyticsreporting/v4"

	"github.com/agentic-research/pathgraph/api"
)

// fakeSource serves canned pages keyed by cursor and records every cursor it
// was asked for.
type fakeSource struct {
	pages   map[string]*analyticsreporting.GetReportsResponse
	fetched []string
	err     error
}

func (s *fakeSource) Fetch(_ context.Context, pageToken string) (*analyticsreporting.GetReportsResponse, error) {
	s.fetched = append(s.fetched, pageToken)
	if s.err != nil {
		return nil, s.err
	}
	resp, ok := s.pages[pageToken]
	if !ok {
		return nil, errors.New("unexpected cursor " + pageToken)
	}
	return resp, nil
}

func page(nextToken string, rows ...*analyticsreporting.ReportRow) *analyticsreporting.GetReportsResponse {
	return &analyticsreporting.GetReportsResponse{
		Reports: []*analyticsreporting.Report{{
			NextPageToken: nextToken,
			ColumnHeader: &analyticsreporting.ColumnHeader{
				Dimensions: []string{"ga:date", "ga:previousPagePath", "ga:pagePath"},
				MetricHeader: &analyticsreporting.MetricHeader{
					MetricHeaderEntries: []*analyticsreporting.MetricHeaderEntry{
						{Name: "ga:pageviews"},
					},
				},
			},
			Data: &analyticsreporting.ReportData{Rows: rows},
		}},
	}
}

func row(prev, current, count string) *analyticsreporting.ReportRow {
	return &analyticsreporting.ReportRow{
		Dimensions: []string{"20260801", prev, current},
		Metrics:    []*analyticsreporting.DateRangeValues{{Values: []string{count}}},
	}
}

func TestFetchAll_SinglePage(t *testing.T) {
	source := &fakeSource{pages: map[string]*analyticsreporting.GetReportsResponse{
		"0": page("", row("/a/", "/b/", "5")),
	}}

	g, err := NewPaginator(source, nil).FetchAll(context.Background())
	require.NoError(t, err)

	// No continuation token means exactly one fetch.
	assert.Equal(t, []string{"0"}, source.fetched)
	assert.Equal(t, []string{"/a/", "/b/"}, g.Paths)
}

func TestFetchAll_FollowsCursorsVerbatim(t *testing.T) {
	// Opaque, non-numeric tokens must be echoed exactly.
	source := &fakeSource{pages: map[string]*analyticsreporting.GetReportsResponse{
		"0":        page("tok-1000", row("/a/", "/b/", "5")),
		"tok-1000": page("tok-2000", row("/b/", "/c/", "2")),
		"tok-2000": page("", row("/c/", "/a/", "1")),
	}}

	g, err := NewPaginator(source, nil).FetchAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "tok-1000", "tok-2000"}, source.fetched)
	assert.Equal(t, []string{"/a/", "/b/", "/c/"}, g.Paths)
	assert.Equal(t, []api.Connection{
		{From: 0, To: 1, Count: 5},
		{From: 1, To: 2, Count: 2},
		{From: 2, To: 0, Count: 1},
	}, g.Connections)
}

func TestFetchAll_IndicesStableAcrossPages(t *testing.T) {
	source := &fakeSource{pages: map[string]*analyticsreporting.GetReportsResponse{
		"0": page("next", row("/a/", "/b/", "5")),
		"next": page("",
			row("/b/", "/a/", "3"),
			row("/a/", "/b/", "1"),
		),
	}}

	g, err := NewPaginator(source, nil).FetchAll(context.Background())
	require.NoError(t, err)

	// Paths seen on page one keep their indices on page two.
	assert.Equal(t, []string{"/a/", "/b/"}, g.Paths)
	assert.Equal(t, []api.Connection{
		{From: 0, To: 1, Count: 5},
		{From: 1, To: 0, Count: 3},
		{From: 0, To: 1, Count: 1},
	}, g.Connections)
}

func TestFetchAll_EmptyResponseTerminates(t *testing.T) {
	source := &fakeSource{pages: map[string]*analyticsreporting.GetReportsResponse{
		"0": {},
	}}

	g, err := NewPaginator(source, nil).FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, g.Paths)
	assert.Empty(t, g.Connections)
}

func TestFetchAll_FetchErrorIsFatal(t *testing.T) {
	fetchErr := errors.New("quota exceeded")
	source := &fakeSource{err: fetchErr}

	g, err := NewPaginator(source, nil).FetchAll(context.Background())
	assert.Nil(t, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, fetchErr)
}
