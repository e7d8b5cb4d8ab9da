// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Start from this FEN position (default: standard start)")
	moveList  = flag.String("moves", "", "Moves to play first, in coordinate notation (e.g. \"e2e4 e7e5\")")

	// Search options
	searchMove    = flag.Bool("search", false, "Search for an engine move")
	searchDepth   = flag.Int("depth", 3, "Search depth in plies")
	searchWorkers = flag.Int("workers", 1, "Number of root moves searched concurrently")
	searchTimeout = flag.Duration("timeout", 0, "Stop searching after this long and use the best move so far (0 = no limit)")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count leaf positions to this depth instead of reporting")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	outputFormat = flag.String("format", "text", "Output format: text, json, svg, fen")
	listMoves    = flag.Bool("list", false, "List the playable moves of the side to move")
	squareSize   = flag.Int("size", 60, "Square size in pixels for SVG output")

	// Logging options
	logFile   = flag.String("l", "", "Write log messages to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0=nothing, 1=summary, 2=search progress")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Informational
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applySearchFlags(cfg)
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applySearchFlags configures the engine search.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Enabled = *searchMove
	cfg.Search.Depth = *searchDepth
	cfg.Search.Workers = *searchWorkers
	cfg.Search.Timeout = *searchTimeout
}

// applyOutputFlags configures the report format.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.Output.Format = format
	cfg.Output.ListMoves = *listMoves
	cfg.Output.SquareSize = *squareSize
	return nil
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
}
