package engine

// Perft counts the leaf positions reachable in exactly depth plies,
// following only moves that MakeMove accepts.
func Perft(board *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	player := board.CurrentPlayer()
	var nodes uint64
	for _, move := range player.legalMoves {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		if depth == 1 {
			nodes++
			continue
		}
		nodes += Perft(transition.Board, depth-1)
	}
	return nodes
}

// Divide returns the perft count below each accepted root move, keyed by
// the move's long algebraic notation.
func Divide(board *Board, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	player := board.CurrentPlayer()
	for _, move := range player.legalMoves {
		transition := player.MakeMove(move)
		if !transition.Status.IsDone() {
			continue
		}
		counts[move.String()] = Perft(transition.Board, depth-1)
	}
	return counts
}
