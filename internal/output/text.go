package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// WriteDiagram writes an ASCII diagram of board, rank 8 first, with rank
// numbers on the left and files along the bottom.
func WriteDiagram(w io.Writer, board *engine.Board) error {
	var sb strings.Builder
	for row := 0; row < chess.NumTilesPerRow; row++ {
		fmt.Fprintf(&sb, "%d ", chess.NumTilesPerRow-row)
		for col := 0; col < chess.NumTilesPerRow; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(board.Tile(chess.Coordinate(row, col)).String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteText writes the diagram followed by the FEN, the status line and
// any listed moves and engine result.
func WriteText(w io.Writer, r *Report) error {
	if err := WriteDiagram(w, r.Board); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "FEN: %s\n", engine.BoardToFEN(r.Board))
	fmt.Fprintf(&sb, "%s to move: %s\n", r.Board.CurrentPlayer().Alliance(), statusLine(r.Board))
	if engine.HasInsufficientMaterial(r.Board) {
		sb.WriteString("Insufficient material\n")
	}

	if r.Moves != nil {
		names := make([]string, len(r.Moves))
		for i, move := range r.Moves {
			names[i] = move.String()
		}
		fmt.Fprintf(&sb, "Moves (%d): %s\n", len(names), strings.Join(names, " "))
	}

	if r.Engine != nil {
		fmt.Fprintf(&sb, "Engine move: %s (score %d, depth %d", r.Engine.Move, r.Engine.Score, r.Engine.Depth)
		if !r.Engine.Complete {
			fmt.Fprintf(&sb, ", %d/%d root moves", r.Engine.Completed, r.Engine.Total)
		}
		sb.WriteString(")\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
