package main

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/testutil"
)

// newTestConfig returns a config writing to buffers.
func newTestConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := config.NewConfigBuilder().WithOutput(out).WithLogFile(logs).Build()
	return cfg, out, logs
}

func TestLoadBoard(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantFEN string
		wantErr bool
	}{
		{"empty uses start position", "", engine.InitialFEN, false},
		{"custom position", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", "4k3/8/8/8/8/8/8/4K3 b - - 0 1", false},
		{"bad FEN", "not a fen", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := loadBoard(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadBoard(%q) error = %v, wantErr %v", tt.fen, err, tt.wantErr)
			}
			if err == nil {
				testutil.AssertEqual(t, engine.BoardToFEN(board), tt.wantFEN)
			}
		})
	}
}

func TestRun_TextReport(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Output.ListMoves = true

	err := run(cfg, runOptions{moves: []string{"e2e4", "e7e5"}})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "White to move: OK")
	testutil.AssertContains(t, out.String(), "4 - - - - P - - -")
	testutil.AssertContains(t, out.String(), "Moves (")
}

func TestRun_IllegalMove(t *testing.T) {
	cfg, out, _ := newTestConfig()

	err := run(cfg, runOptions{moves: []string{"e2e4", "e2e4"}})
	testutil.AssertError(t, err)

	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		t.Fatalf("error %v is not a *MoveError", err)
	}
	testutil.AssertEqual(t, moveErr.PlyNum, 2)
	testutil.AssertEqual(t, moveErr.MoveText, "e2e4")
	testutil.AssertEqual(t, out.Len(), 0)
}

func TestRun_LeavesKingInCheck(t *testing.T) {
	cfg, _, _ := newTestConfig()

	// The e2 knight is pinned against the king.
	err := run(cfg, runOptions{fen: "4r2k/8/8/8/8/8/4N3/4K3 w - - 0 1", moves: []string{"e2c3"}})
	if !stderrors.Is(err, errors.ErrLeavesKingInCheck) {
		t.Errorf("run() error = %v, want ErrLeavesKingInCheck", err)
	}
}

func TestRun_Search(t *testing.T) {
	cfg, out, logs := newTestConfig()
	cfg.Search.Enabled = true
	cfg.Search.Depth = 2
	cfg.Search.Workers = 2
	cfg.Verbosity = 2

	err := run(cfg, runOptions{moves: []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6"}})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, out.String(), "Engine move: h5f7")
	testutil.AssertContains(t, logs.String(), "Replayed 6 moves")
	testutil.AssertContains(t, logs.String(), "root moves at depth 2")
	testutil.AssertContains(t, logs.String(), "] h5f7 score")
}

func TestRun_SearchWithoutMoves(t *testing.T) {
	cfg, out, logs := newTestConfig()
	cfg.Search.Enabled = true
	cfg.Output.Format = config.JSON

	err := run(cfg, runOptions{fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, logs.String(), "No move to search")
	testutil.AssertContains(t, out.String(), `"stalemate": true`)
	testutil.AssertNotContains(t, out.String(), `"engine"`)
}

func TestRun_Perft(t *testing.T) {
	cfg, out, _ := newTestConfig()

	err := run(cfg, runOptions{perftDepth: 2})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "Nodes: 400\n")
}

func TestRun_PerftDivide(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Verbosity = 0

	err := run(cfg, runOptions{perftDepth: 2, divide: true})
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// 20 root moves, a blank line and the total.
	testutil.AssertEqual(t, len(lines), 22)
	testutil.AssertEqual(t, lines[0], "a2a3: 20")
	testutil.AssertEqual(t, lines[len(lines)-1], "Nodes: 400")
}

func TestRun_FENFormat(t *testing.T) {
	cfg, out, _ := newTestConfig()
	cfg.Output.Format = config.FEN

	err := run(cfg, runOptions{moves: []string{"e2e4"}})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n")
}

func TestUsage(t *testing.T) {
	// usage writes to stderr; just verify it does not panic.
	usage()
}
