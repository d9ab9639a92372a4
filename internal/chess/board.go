package chess

// Board is the 8x5 grid of optional pieces. Row 0 is the far edge from the
// side on move.
type Board struct {
	Squares [Rows][Cols]*Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both armies. Pink
// starts at the bottom (rows 6-7) and moves first.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	pinkBack := []Kind{Tor, Biz, Sau, Biz, Xor}
	blueBack := []Kind{Xor, Biz, Sau, Biz, Tor}
	for col := 0; col < Cols; col++ {
		b.Place(NewPiece(blueBack[col], Blue, 0, col))
		b.Place(NewPiece(Ram, Blue, 1, col))
		b.Place(NewPiece(Ram, Pink, LastRow-1, col))
		b.Place(NewPiece(pinkBack[col], Pink, LastRow, col))
	}
}

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Get returns the piece at (row, col), or nil for empty or off-board cells.
func (b *Board) Get(row, col int) *Piece {
	if !InBounds(row, col) {
		return nil
	}
	return b.Squares[row][col]
}

// Set stores p at (row, col) without touching p's coordinates.
func (b *Board) Set(row, col int, p *Piece) {
	if InBounds(row, col) {
		b.Squares[row][col] = p
	}
}

// Place stores p at its own coordinates.
func (b *Board) Place(p *Piece) {
	b.Set(p.Row, p.Col, p)
}

// IsEmpty reports whether (row, col) holds no piece.
func (b *Board) IsEmpty(row, col int) bool {
	return b.Get(row, col) == nil
}

// Clear removes every piece.
func (b *Board) Clear() {
	b.Squares = [Rows][Cols]*Piece{}
}

// Pieces returns the occupied cells in row-major order.
func (b *Board) Pieces() []*Piece {
	var pieces []*Piece
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if p := b.Squares[row][col]; p != nil {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// Count returns the number of active pieces of the given kind and side.
func (b *Board) Count(kind Kind, side Side) int {
	n := 0
	for _, p := range b.Pieces() {
		if p.Active && p.Kind == kind && p.Side == side {
			n++
		}
	}
	return n
}

// Copy creates a deep copy of the board. Pieces in the copy are distinct
// values, so callers may read them without affecting the original.
func (b *Board) Copy() *Board {
	c := NewBoard()
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if p := b.Squares[row][col]; p != nil {
				c.Squares[row][col] = p.Clone()
			}
		}
	}
	return c
}
