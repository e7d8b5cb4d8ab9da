package chess

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Constants for algebraic square names.
const (
	FirstCol  = 'a'
	LastCol   = 'h'
	FirstRank = '1'
	LastRank  = '8'
)

// SquareName returns the algebraic name of coordinate c, e.g. 0 -> "a8".
func SquareName(c int) string {
	if !IsValidCoordinate(c) {
		return "-"
	}
	file := byte(FirstCol + Column(c))
	rank := byte(LastRank - Row(c))
	return string([]byte{file, rank})
}

// ParseSquare converts an algebraic square name ("e4") to a coordinate.
func ParseSquare(name string) (int, error) {
	if len(name) != 2 {
		return -1, fmt.Errorf("square %q: %w", name, errors.ErrInvalidCoordinate)
	}
	file, rank := name[0], name[1]
	if file < FirstCol || file > LastCol || rank < FirstRank || rank > LastRank {
		return -1, fmt.Errorf("square %q: %w", name, errors.ErrInvalidCoordinate)
	}
	return Coordinate(int(LastRank-rank), int(file-FirstCol)), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for package-level tables and tests.
func MustParseSquare(name string) int {
	c, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return c
}
