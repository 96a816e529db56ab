// Package config loads the advisor's HCL configuration file.
//
//	log_level = "debug"
//	levels = { "Pair" = 3, "Flush" = 2 }
//
//	server {
//	  address = ":8080"
//	}
//
//	watch {
//	  interval = "2s"
//	}
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/balatro-advisor/internal/scoring"
)

const (
	DefaultLogLevel      = "info"
	DefaultServerAddress = "localhost:8080"
	DefaultWatchInterval = "2s"
)

// Config represents the complete advisor configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Levels   map[string]int  `hcl:"levels,optional"`
	Server   *ServerSettings `hcl:"server,block"`
	Watch    *WatchSettings  `hcl:"watch,block"`
}

// ServerSettings configures the websocket endpoint
type ServerSettings struct {
	Address string `hcl:"address,optional"`
}

// WatchSettings configures the scenario file watcher
type WatchSettings struct {
	Interval string `hcl:"interval,optional"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body, filename)
}

// Parse decodes configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

// Apply defaults for missing values
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Levels == nil {
		c.Levels = map[string]int{}
	}
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultServerAddress
	}
	if c.Watch == nil {
		c.Watch = &WatchSettings{}
	}
	if c.Watch.Interval == "" {
		c.Watch.Interval = DefaultWatchInterval
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if _, err := scoring.ParseLevels(c.Levels); err != nil {
		return fmt.Errorf("invalid levels: %w", err)
	}
	if _, err := c.WatchInterval(); err != nil {
		return err
	}
	return nil
}

// LevelTable returns the configured hand levels.
func (c *Config) LevelTable() (scoring.LevelTable, error) {
	return scoring.ParseLevels(c.Levels)
}

// WatchInterval returns the parsed watch polling interval.
func (c *Config) WatchInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid watch interval %q: %w", c.Watch.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("watch interval must be positive, got %s", d)
	}
	return d, nil
}
