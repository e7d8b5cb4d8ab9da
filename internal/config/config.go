// Package config provides configuration for the chess engine front end.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls logging: 0=nothing, 1=summary, 2=search progress.
	Verbosity int

	// Grouped settings
	Search *SearchConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that reports and diagrams are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLogFile sets the writer that log messages are written to.
func (c *Config) SetLogFile(w io.Writer) {
	c.LogFile = w
}

// Validate checks every group of settings.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}
