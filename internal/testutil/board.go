package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// BoardFromFEN parses a FEN string and returns the board, or nil if the FEN
// is rejected. Use this for tests where a parse failure is an acceptable
// outcome.
func BoardFromFEN(fen string) *engine.Board {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil
	}
	return board
}

// MustBoardFromFEN parses a FEN string and returns the board.
// It calls t.Fatal if the FEN is rejected.
func MustBoardFromFEN(t testing.TB, fen string) *engine.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse test FEN %q: %v", fen, err)
	}
	return board
}

// MustPlay plays moves in coordinate notation from board and returns the
// final board. It calls t.Fatal on the first move that cannot be played.
func MustPlay(t testing.TB, board *engine.Board, moves ...string) *engine.Board {
	t.Helper()
	result, err := engine.Play(board, moves...)
	if err != nil {
		t.Fatalf("failed to play test moves: %v", err)
	}
	return result
}

// MustMove returns the legal move of the side to move named by text.
// It calls t.Fatal if no such move exists.
func MustMove(t testing.TB, board *engine.Board, text string) engine.Move {
	t.Helper()
	move, err := engine.ParseMove(board, text)
	if err != nil {
		t.Fatalf("failed to find test move %q: %v", text, err)
	}
	return move
}

// MoveStrings returns the coordinate notation of moves, sorted.
func MoveStrings(moves []engine.Move) []string {
	out := make([]string, 0, len(moves))
	for _, move := range moves {
		out = append(out, move.String())
	}
	sort.Strings(out)
	return out
}

// PlayableMoveStrings returns the sorted coordinate notation of every move
// the side to move can actually play on board.
func PlayableMoveStrings(board *engine.Board) []string {
	player := board.CurrentPlayer()
	var playable []engine.Move
	for _, move := range player.LegalMoves() {
		if player.MakeMove(move).Status.IsDone() {
			playable = append(playable, move)
		}
	}
	return MoveStrings(playable)
}
