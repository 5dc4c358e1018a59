// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles objcgen project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the configuration file looked up in the working directory.
const FileName = "objcgen.yaml"

// Config represents the objcgen.yaml project configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Templates is a directory overriding the built-in templates, relative to the config file.
	Templates string `yaml:"templates,omitempty"`

	// SharedFramework is the framework shared schema headers are imported from.
	SharedFramework string `yaml:"sharedFramework,omitempty"`

	// BaseSchema is the file name of the base event schema.
	BaseSchema string `yaml:"baseSchema,omitempty"`

	// EventPrefix is stripped from data provider names to derive event names.
	EventPrefix string `yaml:"eventPrefix,omitempty"`

	// Year overrides the copyright year written to generated files.
	Year int `yaml:"year,omitempty"`

	// Exclude lists JSON keys the value-class generator leaves out. Events and data providers
	// always carry every property.
	Exclude []string `yaml:"exclude,omitempty"`

	dir string
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		SharedFramework: "Intelligence",
		BaseSchema:      "base.intelligence.json",
		EventPrefix:     "Analytricks",
	}
}

// Load reads a Config from a file path. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	cfg.Version = 0
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, err
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Year < 0 {
		return fmt.Errorf("invalid year %d", c.Year)
	}
	if c.SharedFramework == "" {
		return errors.New("sharedFramework is required")
	}
	if c.BaseSchema == "" {
		return errors.New("baseSchema is required")
	}
	for _, key := range c.Exclude {
		if key == "" {
			return errors.New("exclude entries must not be empty")
		}
	}
	return nil
}

// TemplatesDir returns the templates directory resolved against the config file location,
// or "" if none is configured.
func (c *Config) TemplatesDir() string {
	if c.Templates == "" {
		return ""
	}
	if filepath.IsAbs(c.Templates) || c.dir == "" {
		return c.Templates
	}
	return filepath.Join(c.dir, c.Templates)
}
