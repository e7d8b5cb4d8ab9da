package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// OutputFormat represents the report format written for a position.
type OutputFormat int

const (
	Text OutputFormat = iota // ASCII diagram and status lines
	JSON                     // JSON report
	SVG                      // SVG board diagram
	FEN                      // Bare FEN string
)

var outputFormatNames = map[OutputFormat]string{
	Text: "text",
	JSON: "json",
	SVG:  "svg",
	FEN:  "fen",
}

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if name, ok := outputFormatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat parses a format name as accepted by the -format flag.
func ParseOutputFormat(name string) (OutputFormat, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for format, n := range outputFormatNames {
		if n == name {
			return format, nil
		}
	}
	return Text, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the report format.
	Format OutputFormat

	// ListMoves includes the side to move's playable moves in the report.
	ListMoves bool

	// SquareSize is the edge length of one square in SVG output, in pixels.
	SquareSize int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		SquareSize: 60,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if _, ok := outputFormatNames[o.Format]; !ok {
		return fmt.Errorf("unknown output format %d: %w", int(o.Format), errors.ErrInvalidConfig)
	}
	if o.SquareSize < 1 {
		return fmt.Errorf("square size %d must be positive: %w", o.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
