package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "railbird.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "localhost", config.Server.Address)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, 9, config.Session.TableSize)
	assert.Equal(t, "localhost:8080", config.GetServerAddress())
}

func TestLoadConfig_ParsesAndFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
server {
  port      = 9090
  log_level = "debug"
}

session {
  table_size = 6
  venue      = "Home game"
}
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, "debug", config.Server.LogLevel)
	assert.Equal(t, "localhost", config.Server.Address) // defaulted
	assert.Equal(t, "railbird.db", config.Server.Database)
	assert.Equal(t, 6, config.Session.TableSize)
	assert.Equal(t, "Home game", config.Session.Venue)
	require.NoError(t, config.Validate())
}

func TestLoadConfig_InvalidHCL(t *testing.T) {
	path := writeConfig(t, `server { port = `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad log level", func(c *Config) { c.Server.LogLevel = "verbose" }},
		{"table too big", func(c *Config) { c.Session.TableSize = 10 }},
		{"table too small", func(c *Config) { c.Session.TableSize = 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			assert.Error(t, config.Validate())
		})
	}
}
