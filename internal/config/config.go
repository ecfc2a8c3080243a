// Package config loads the optional mcstats YAML configuration file.
// Command-line flags override anything set here.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool-wide settings.
type Config struct {
	// Report is the title of generated reports.
	Report ReportConfig `yaml:"report"`
	// DeathList is the path to the newline-delimited death-cause phrases.
	DeathList string `yaml:"deathList"`
	// Server configures the serve command.
	Server ServerConfig `yaml:"server"`
}

// ReportConfig controls presentation.
type ReportConfig struct {
	Title string `yaml:"title"`
	Color bool   `yaml:"color"`
}

// ServerConfig controls the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Title: "Minecraft Statistics",
			Color: true,
		},
		DeathList: "deathlist",
		Server: ServerConfig{
			Addr: ":8089",
		},
	}
}

// Load reads a YAML config file on top of the defaults. A missing path is
// not an error when it is the implicit default location.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader parses configuration YAML on top of the defaults.
func FromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
