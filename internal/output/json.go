package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	FEN        string `json:"fen"`
	SideToMove string `json:"sideToMove"` // "white" or "black"
	Status     string `json:"status"`
	InCheck    bool   `json:"inCheck"`
	Checkmate  bool   `json:"checkmate"`
	Stalemate  bool   `json:"stalemate"`

	// InsufficientMaterial is set when neither side can mate.
	InsufficientMaterial bool `json:"insufficientMaterial,omitempty"`

	Moves  []string    `json:"moves,omitempty"`
	Engine *JSONEngine `json:"engine,omitempty"`
}

// JSONEngine represents a search result in JSON format.
type JSONEngine struct {
	Move      string `json:"move"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Score     int    `json:"score"`
	Depth     int    `json:"depth"`
	Nodes     uint64 `json:"nodes"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Complete  bool   `json:"complete"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report) *JSONReport {
	player := r.Board.CurrentPlayer()
	jr := &JSONReport{
		FEN:        engine.BoardToFEN(r.Board),
		SideToMove: colorName(player.Alliance().IsWhite()),
		Status:     statusLine(r.Board),
		InCheck:    player.IsInCheck(),
		Checkmate:  player.IsInCheckMate(),
		Stalemate:  player.IsInStaleMate(),

		InsufficientMaterial: engine.HasInsufficientMaterial(r.Board),
	}

	if r.Moves != nil {
		jr.Moves = make([]string, len(r.Moves))
		for i, move := range r.Moves {
			jr.Moves[i] = move.String()
		}
	}

	if res := r.Engine; res != nil {
		je := &JSONEngine{
			Move:      res.Move.String(),
			Score:     res.Score,
			Depth:     res.Depth,
			Nodes:     res.Nodes,
			Completed: res.Completed,
			Total:     res.Total,
			Complete:  res.Complete,
		}
		if !res.Move.IsNull() {
			text := res.Move.String()
			je.From, je.To = text[0:2], text[2:4]
			je.Piece = res.Move.MovedPiece().Type().Name()
		}
		if captured, ok := res.Move.AttackedPiece(); ok {
			je.Captured = captured.Type().Name()
		}
		jr.Engine = je
	}
	return jr
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r))
}

// colorName returns "white" or "black".
func colorName(isWhite bool) string {
	if isWhite {
		return "white"
	}
	return "black"
}
