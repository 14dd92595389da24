// Package config loads the HCL run configuration: which view to extract,
// how to authenticate, and where the finished graph goes.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is one extraction run.
//
//	view_id   = "123456789"
//	key_file  = "service-account.json"
//	start_date = "30daysAgo"
//
//	output {
//	  paths       = "paths.csv"
//	  connections = "connections.csv"
//	  database    = "graph.db"
//	}
type Config struct {
	// ViewID is the Analytics view to query.
	ViewID string `hcl:"view_id"`
	// KeyFile is the service account JSON key used to authenticate.
	KeyFile string `hcl:"key_file"`
	// StartDate is a GA date expression; the range always ends at "today".
	StartDate string `hcl:"start_date,optional"`
	// Output names the persistence targets.
	Output Output `hcl:"output,block"`
}

// Output holds the persistence targets for a finished graph.
type Output struct {
	// Paths is the CSV file for the path list (one path per line).
	Paths string `hcl:"paths"`
	// Connections is the CSV file for the from,to,count records.
	Connections string `hcl:"connections"`
	// Database, when set, additionally writes a SQLite snapshot.
	Database string `hcl:"database,optional"`
}

// Load reads and validates a .hcl config file.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if cfg.ViewID == "" {
		return nil, fmt.Errorf("config %s: view_id is required", path)
	}
	if cfg.KeyFile == "" {
		return nil, fmt.Errorf("config %s: key_file is required", path)
	}
	if cfg.StartDate == "" {
		cfg.StartDate = "yesterday"
	}
	if cfg.Output.Paths == "" || cfg.Output.Connections == "" {
		return nil, fmt.Errorf("config %s: output.paths and output.connections are required", path)
	}

	return &cfg, nil
}
