package chess

import "fmt"

// Piece is a single piece on the board.
type Piece struct {
	Kind   Kind
	Side   Side
	Row    int
	Col    int
	Active bool

	// Moves counts completed moves by the owning side while the piece is in
	// its current form. Only Tor and Xor use it.
	Moves int

	// Reversed is set once a Ram has bounced off the far edge and travels
	// back toward its own side.
	Reversed bool
}

// NewPiece creates an active piece at the given cell.
func NewPiece(kind Kind, side Side, row, col int) *Piece {
	return &Piece{
		Kind:   kind,
		Side:   side,
		Row:    row,
		Col:    col,
		Active: true,
	}
}

// SetPosition updates the stored coordinates.
func (p *Piece) SetPosition(row, col int) {
	p.Row = row
	p.Col = col
}

// Capture marks the piece as taken.
func (p *Piece) Capture() {
	p.Active = false
}

// Forward returns the row delta of a Ram's next step. The side on move
// always advances toward row 0 because the board is reoriented after every
// move.
func (p *Piece) Forward() int {
	if p.Reversed {
		return 1
	}
	return -1
}

// Clone returns a copy of the piece.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// String returns a short description such as "Pink Tor at (7,0)".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s at (%d,%d)", p.Side, p.Kind, p.Row, p.Col)
}
