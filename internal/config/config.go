// Package config loads interpreter settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMemorySize = 16384
	DefaultStackSize  = 1024
)

type Config struct {
	MemorySize  int    `yaml:"memory_size"`  // bytes shared by program text and stack
	StackSize   int    `yaml:"stack_size"`   // bytes reserved for the control stack
	MaxSteps    int    `yaml:"max_steps"`    // statements per submitted line, 0 = unlimited
	Prompt      string `yaml:"prompt"`       // REPL prompt
	HistoryFile string `yaml:"history_file"` // REPL history, empty disables history
	Color       bool   `yaml:"color"`        // colored REPL messages
}

// Default returns the built-in configuration
func Default() Config {
	history := ""
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		history = filepath.Join(home, ".minibasic_history")
	}

	return Config{
		MemorySize:  DefaultMemorySize,
		StackSize:   DefaultStackSize,
		HistoryFile: history,
		Color:       true,
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	if err := decode(file, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads a configuration document from r over the defaults
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks the memory split and limits
func (c Config) Validate() error {
	if c.MemorySize <= 0 {
		return fmt.Errorf("memory_size must be positive, got %d", c.MemorySize)
	}
	if c.StackSize <= 0 || c.StackSize >= c.MemorySize {
		return fmt.Errorf("stack_size must be between 1 and %d, got %d", c.MemorySize-1, c.StackSize)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	return nil
}
