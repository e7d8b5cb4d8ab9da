package chess

// Tile is an addressable board cell, either empty or occupied by a piece.
type Tile struct {
	coordinate int
	piece      Piece
	occupied   bool
}

// emptyTiles caches the empty tile for every coordinate; empty tiles carry
// no state besides their coordinate.
var emptyTiles = func() [NumTiles]Tile {
	var tiles [NumTiles]Tile
	for i := range tiles {
		tiles[i] = Tile{coordinate: i}
	}
	return tiles
}()

// EmptyTile returns the cached empty tile for coordinate.
func EmptyTile(coordinate int) Tile {
	return emptyTiles[coordinate]
}

// NewTile returns the tile for coordinate holding piece, or the cached
// empty tile when piece is the zero value.
func NewTile(coordinate int, piece Piece) Tile {
	if piece.IsZero() {
		return EmptyTile(coordinate)
	}
	return Tile{coordinate: coordinate, piece: piece, occupied: true}
}

// Coordinate returns the tile coordinate.
func (t Tile) Coordinate() int { return t.coordinate }

// IsOccupied reports whether a piece stands on the tile.
func (t Tile) IsOccupied() bool { return t.occupied }

// Piece returns the occupying piece; the zero Piece for an empty tile.
func (t Tile) Piece() Piece { return t.piece }

// String returns "-" for an empty tile and the piece letter otherwise.
func (t Tile) String() string {
	if !t.occupied {
		return "-"
	}
	return t.piece.String()
}
