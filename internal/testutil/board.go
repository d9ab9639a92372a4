package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/kwazam-go/internal/chess"
)

// P creates an active piece for board fixtures.
func P(kind chess.Kind, side chess.Side, row, col int) *chess.Piece {
	return chess.NewPiece(kind, side, row, col)
}

// BoardWith builds a board holding exactly the given pieces. It calls
// t.Fatal if two pieces share a cell or a piece is off the board.
func BoardWith(t *testing.T, pieces ...*chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewBoard()
	for _, p := range pieces {
		if !chess.InBounds(p.Row, p.Col) {
			t.Fatalf("fixture piece %v is off the board", p)
		}
		if !b.IsEmpty(p.Row, p.Col) {
			t.Fatalf("fixture cell (%d,%d) used twice", p.Row, p.Col)
		}
		b.Place(p)
	}
	return b
}

// PieceState is the comparable identity of a piece: kind, side and cell.
type PieceState struct {
	Kind chess.Kind
	Side chess.Side
	Row  int
	Col  int
}

// Snapshot lists the active pieces of b in row-major order.
func Snapshot(b *chess.Board) []PieceState {
	var states []PieceState
	for _, p := range b.Pieces() {
		if p.Active {
			states = append(states, PieceState{Kind: p.Kind, Side: p.Side, Row: p.Row, Col: p.Col})
		}
	}
	return states
}

// AssertBoardsEqual fails if the two boards differ in active pieces, kinds,
// sides or cells. Move counters are not compared.
func AssertBoardsEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(Snapshot(want), Snapshot(got)); diff != "" {
		fail(t, "board mismatch (-want +got):\n"+diff, msgAndArgs...)
	}
}

// AssertConsistent fails if any piece's stored coordinates differ from
// its cell.
func AssertConsistent(t *testing.T, b *chess.Board) {
	t.Helper()
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			p := b.Squares[row][col]
			if p != nil && (p.Row != row || p.Col != col) {
				t.Errorf("piece in cell (%d,%d) stores (%d,%d)", row, col, p.Row, p.Col)
			}
		}
	}
}
