package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Square fills used by the SVG diagram.
const (
	lightSquare     = "fill:#f0d9b5"
	darkSquare      = "fill:#b58863"
	highlightSquare = "fill:#cdd26a;fill-opacity:0.8"
)

// pieceGlyphs maps a piece letter to its Unicode chess symbol.
var pieceGlyphs = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// WriteSVG draws board as an SVG document with squares of size pixels.
// The squares of highlight, unless it is the null move, are tinted.
func WriteSVG(w io.Writer, board *engine.Board, size int, highlight engine.Move) error {
	cw := &errWriter{w: w}
	canvas := svg.New(cw)
	edge := size * chess.NumTilesPerRow
	margin := size / 2

	canvas.Start(edge+margin, edge+margin)
	canvas.Title(engine.BoardToFEN(board))

	fontSize := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*3/4)
	labelSize := fmt.Sprintf("font-size:%dpx;text-anchor:middle;dominant-baseline:central;fill:#555", size/4)

	for coord := 0; coord < chess.NumTiles; coord++ {
		row, col := chess.Row(coord), chess.Column(coord)
		x, y := margin+col*size, row*size

		style := lightSquare
		if (row+col)%2 == 1 {
			style = darkSquare
		}
		canvas.Rect(x, y, size, size, style)
		if !highlight.IsNull() && (coord == highlight.CurrentCoordinate() || coord == highlight.DestinationCoordinate()) {
			canvas.Rect(x, y, size, size, highlightSquare)
		}

		if tile := board.Tile(coord); tile.IsOccupied() {
			canvas.Text(x+size/2, y+size/2, pieceGlyphs[tile.Piece().Letter()], fontSize)
		}
	}

	for i := 0; i < chess.NumTilesPerRow; i++ {
		canvas.Text(margin/2, i*size+size/2, fmt.Sprintf("%d", chess.NumTilesPerRow-i), labelSize)
		canvas.Text(margin+i*size+size/2, edge+margin/2, string(rune('a'+i)), labelSize)
	}

	canvas.End()
	return cw.err
}

// errWriter remembers the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
