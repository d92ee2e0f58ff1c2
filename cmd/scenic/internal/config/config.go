// Package config loads the optional scenic.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the optional scenic.yaml configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Frame  FrameConfig  `yaml:"frame"`
}

// OutputConfig contains render surface settings.
type OutputConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Path   string `yaml:"path,omitempty"`
}

// FrameConfig contains frame loop settings.
type FrameConfig struct {
	// Rate is the target frames per second for interactive loops.
	Rate int `yaml:"rate,omitempty"`
}

// Resolved contains configuration values with defaults filled in.
type Resolved struct {
	Width      int
	Height     int
	OutputPath string
	FrameRate  int
}

// Defaults used when scenic.yaml is absent or partial.
const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultFrameRate = 60
)

// LoadOptional reads scenic.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "scenic.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read scenic.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scenic.yaml: %w", err)
	}
	return &cfg, nil
}

// Resolve loads scenic.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		Width:      cfg.Output.Width,
		Height:     cfg.Output.Height,
		OutputPath: strings.TrimSpace(cfg.Output.Path),
		FrameRate:  cfg.Frame.Rate,
	}
	if resolved.Width <= 0 {
		resolved.Width = DefaultWidth
	}
	if resolved.Height <= 0 {
		resolved.Height = DefaultHeight
	}
	if resolved.OutputPath == "" {
		resolved.OutputPath = "out.png"
	}
	if resolved.FrameRate <= 0 {
		resolved.FrameRate = DefaultFrameRate
	}
	return resolved, nil
}
