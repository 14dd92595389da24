package api

// Graph is the navigation graph produced by one extraction run: the distinct
// canonical page paths plus the directed transitions between them.
type Graph struct {
	// Paths holds every distinct canonical path, in first-seen order.
	// A path's position in this slice is its index for Connections.
	Paths []string `json:"paths"`
	// Connections holds one entry per accepted report row. Duplicate
	// endpoint pairs are kept as-is; nothing is merged or summed.
	Connections []Connection `json:"connections"`
}

// Connection is a single directed, weighted transition between two paths,
// referenced by their positions in Graph.Paths.
type Connection struct {
	// From is the index of the previous page's path.
	From int `json:"from"`
	// To is the index of the current page's path.
	To int `json:"to"`
	// Count is the transition weight (pageviews) reported for this row.
	Count int64 `json:"count"`
}

// Stats summarizes a finished graph.
type Stats struct {
	// PathCount is the number of distinct canonical paths.
	PathCount int `json:"path_count"`
	// ConnectionCount is the number of transition records, duplicates included.
	ConnectionCount int `json:"connection_count"`
	// DistinctSources is how many paths appear as a transition origin.
	DistinctSources int `json:"distinct_sources"`
	// DistinctTargets is how many paths appear as a transition destination.
	DistinctTargets int `json:"distinct_targets"`
	// TotalCount is the sum of all connection weights.
	TotalCount int64 `json:"total_count"`
}
