package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete server configuration
type Config struct {
	Server  Settings        `hcl:"server,block"`
	Session SessionDefaults `hcl:"session,block"`
}

// Settings contains server-level configuration
type Settings struct {
	Address        string   `hcl:"address,optional"`
	Port           int      `hcl:"port,optional"`
	LogLevel       string   `hcl:"log_level,optional"`
	Database       string   `hcl:"database,optional"`
	AllowedOrigins []string `hcl:"allowed_origins,optional"`
}

// SessionDefaults seeds new sessions created without explicit values
type SessionDefaults struct {
	TableSize int    `hcl:"table_size,optional"`
	Venue     string `hcl:"venue,optional"`
}

// DefaultConfig returns default server configuration
func DefaultConfig() *Config {
	return &Config{
		Server: Settings{
			Address:        "localhost",
			Port:           8080,
			LogLevel:       "info",
			Database:       "railbird.db",
			AllowedOrigins: []string{"*"},
		},
		Session: SessionDefaults{
			TableSize: 9,
		},
	}
}

// LoadConfig loads server configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Server.Database == "" {
		config.Server.Database = "railbird.db"
	}
	if len(config.Server.AllowedOrigins) == 0 {
		config.Server.AllowedOrigins = []string{"*"}
	}
	if config.Session.TableSize == 0 {
		config.Session.TableSize = 9
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}
	if c.Session.TableSize < 2 || c.Session.TableSize > 9 {
		return fmt.Errorf("session table size must be between 2 and 9, got %d", c.Session.TableSize)
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
