// chess-engine analyses a chess position: it replays moves, reports the
// game status, counts perft nodes and asks the minimax engine for a move.
package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/search"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	job := runOptions{
		fen:        *fenString,
		moves:      splitMoves(*moveList),
		perftDepth: *perftDepth,
		divide:     *divide,
	}
	if err := run(cfg, job); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOptions describes one invocation: the position and what to do with it.
type runOptions struct {
	fen        string
	moves      []string
	perftDepth int
	divide     bool
}

// run loads the position, replays the moves and then either counts perft
// nodes or writes a report, searching first if configured.
func run(cfg *config.Config, job runOptions) error {
	board, err := loadBoard(job.fen)
	if err != nil {
		return err
	}

	board, err = engine.Play(board, job.moves...)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 1 && len(job.moves) > 0 {
		fmt.Fprintf(cfg.LogFile, "Replayed %d moves\n", len(job.moves))
	}

	if job.perftDepth > 0 {
		return runPerft(cfg, board, job.perftDepth, job.divide)
	}

	report := output.NewReport(board, cfg.Output.ListMoves)
	if cfg.Search.Enabled {
		result, err := runSearch(cfg, board)
		switch {
		case stderrors.Is(err, errors.ErrNoLegalMove):
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "No move to search: %s\n", board.GameStatusMessage())
			}
		case err != nil:
			return err
		default:
			report.WithEngine(result)
		}
	}

	return output.NewReportWriter(cfg.OutputFile, cfg.Output).WriteReport(report)
}

// loadBoard returns the standard start position or the board for fen.
func loadBoard(fen string) (*engine.Board, error) {
	if fen == "" {
		return engine.NewStandardBoard(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// runSearch asks the engine for a move, bounded by the configured timeout.
func runSearch(cfg *config.Config, board *engine.Board) (search.Result, error) {
	ctx := context.Background()
	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	opts := []search.Option{
		search.WithDepth(cfg.Search.Depth),
		search.WithWorkers(cfg.Search.Workers),
	}
	if cfg.Verbosity > 1 {
		opts = append(opts, search.WithProgress(func(p search.Progress) {
			fmt.Fprintf(cfg.LogFile, "  [%d/%d] %s score %d (%d nodes)\n",
				p.Completed, p.Total, p.Move, p.Score, p.Nodes)
		}))
	}

	start := time.Now()
	result, err := search.SearchContext(ctx, board, opts...)
	if err != nil {
		return result, err
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "Searched %d/%d root moves at depth %d in %v (%d nodes)\n",
			result.Completed, result.Total, result.Depth, time.Since(start).Round(time.Millisecond), result.Nodes)
		if !result.Complete {
			fmt.Fprintf(cfg.LogFile, "Search stopped early; using best move so far\n")
		}
	}
	return result, nil
}

// runPerft writes the perft count of board, optionally split by root move.
func runPerft(cfg *config.Config, board *engine.Board, depth int, split bool) error {
	start := time.Now()

	var nodes uint64
	if split {
		counts := engine.Divide(board, depth)
		moves := make([]string, 0, len(counts))
		for move := range counts {
			moves = append(moves, move)
		}
		sort.Strings(moves)
		for _, move := range moves {
			if _, err := fmt.Fprintf(cfg.OutputFile, "%s: %d\n", move, counts[move]); err != nil {
				return err
			}
			nodes += counts[move]
		}
		fmt.Fprintln(cfg.OutputFile)
	} else {
		nodes = engine.Perft(board, depth)
	}

	if _, err := fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes); err != nil {
		return err
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d) in %v\n", depth, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reports a chess position and optionally searches it for an engine move.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  text   ASCII diagram and status (default)\n")
	fmt.Fprintf(os.Stderr, "  json   JSON report\n")
	fmt.Fprintf(os.Stderr, "  svg    SVG board diagram\n")
	fmt.Fprintf(os.Stderr, "  fen    FEN string\n")
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -moves \"e2e4 e7e5\" -list\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -fen \"<fen>\" -search -depth 4 -workers 4 -timeout 5s\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -perft 3 -divide\n")
}
