package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// CreateMove looks up the current player's legal move from one coordinate
// to another. ok is false, and the null move is returned, when no legal
// move matches.
func CreateMove(board *Board, from, to int) (move Move, ok bool) {
	for _, m := range board.CurrentPlayer().legalMoves {
		if m.CurrentCoordinate() == from && m.destination == to {
			return m, true
		}
	}
	return Move{}, false
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q") and returns
// the matching legal move of the side to move. Promotions are always to a
// queen, so the only accepted suffix is "q".
func ParseMove(board *Board, text string) (Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}

	move, ok := CreateMove(board, from, to)
	if !ok {
		return Move{}, fmt.Errorf("%s: %w", text, errors.ErrNoLegalMove)
	}
	if len(text) == 5 {
		if !move.IsPromotion() || chess.PieceTypeFromLetter(text[4]) != chess.Queen {
			return Move{}, fmt.Errorf("%q: unsupported promotion: %w", text, errors.ErrInvalidMoveText)
		}
	}
	return move, nil
}

// Play parses and makes each move in turn, starting from board. It stops
// at the first move that cannot be parsed or is rejected and returns a
// *errors.MoveError describing it, together with the last good board.
func Play(board *Board, moves ...string) (*Board, error) {
	for i, text := range moves {
		move, err := ParseMove(board, text)
		if err != nil {
			return board, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text, FEN: BoardToFEN(board)}
		}
		transition := board.CurrentPlayer().MakeMove(move)
		if err := transition.Err(); err != nil {
			return board, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text, FEN: BoardToFEN(board)}
		}
		board = transition.Board
	}
	return board, nil
}
