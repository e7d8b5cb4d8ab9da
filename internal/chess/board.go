package chess

// Board geometry. Coordinates run 0-63 in row-major order; row 0 is
// rank 8 (Black's back rank) and column 0 is the a-file.
const (
	NumTiles       = 64
	NumTilesPerRow = 8
)

// Column membership tables, used to reject offsets that would wrap from
// one edge of the board to the other.
var (
	FirstColumn   = columnMask(0)
	SecondColumn  = columnMask(1)
	SeventhColumn = columnMask(6)
	EighthColumn  = columnMask(7)
)

func columnMask(column int) [NumTiles]bool {
	var mask [NumTiles]bool
	for c := column; c < NumTiles; c += NumTilesPerRow {
		mask[c] = true
	}
	return mask
}

// IsValidCoordinate reports whether c addresses a tile.
func IsValidCoordinate(c int) bool {
	return c >= 0 && c < NumTiles
}

// Row returns the row of coordinate c (0 = rank 8).
func Row(c int) int {
	return c / NumTilesPerRow
}

// Column returns the column of coordinate c (0 = a-file).
func Column(c int) int {
	return c % NumTilesPerRow
}

// Coordinate returns the coordinate of the given row and column.
func Coordinate(row, column int) int {
	return row*NumTilesPerRow + column
}
