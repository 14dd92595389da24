package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathgraph.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
view_id    = "123456789"
key_file   = "service-account.json"
start_date = "30daysAgo"

output {
  paths       = "paths.csv"
  connections = "connections.csv"
  database    = "graph.db"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "123456789", cfg.ViewID)
	assert.Equal(t, "service-account.json", cfg.KeyFile)
	assert.Equal(t, "30daysAgo", cfg.StartDate)
	assert.Equal(t, "paths.csv", cfg.Output.Paths)
	assert.Equal(t, "connections.csv", cfg.Output.Connections)
	assert.Equal(t, "graph.db", cfg.Output.Database)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
view_id  = "123456789"
key_file = "key.json"

output {
  paths       = "paths"
  connections = "connections"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yesterday", cfg.StartDate)
	assert.Empty(t, cfg.Output.Database)
}

func TestLoad_MissingView(t *testing.T) {
	path := writeConfig(t, `
view_id  = ""
key_file = "key.json"

output {
  paths       = "paths"
  connections = "connections"
}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "view_id")
}
