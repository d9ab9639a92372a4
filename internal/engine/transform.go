package engine

import "github.com/lgbarn/kwazam-go/internal/chess"

// transformEvery is the number of own-side moves a Tor or Xor spends in one
// form before switching.
const transformEvery = 2

// countSideMove credits a completed move to every Tor and Xor of side.
func countSideMove(board *chess.Board, side chess.Side) {
	for _, p := range board.Pieces() {
		if p.Active && p.Side == side && p.Kind.IsSliding() {
			p.Moves++
		}
	}
}

// applyTransformations replaces each Tor or Xor whose counter is a positive
// multiple of transformEvery with a fresh piece of the other form at the
// same cell. It returns the replacement pieces.
func applyTransformations(board *chess.Board) []*chess.Piece {
	var changed []*chess.Piece
	for _, p := range board.Pieces() {
		if !p.Kind.IsSliding() {
			continue
		}
		if p.Moves > 0 && p.Moves%transformEvery == 0 {
			np := chess.NewPiece(p.Kind.Transformed(), p.Side, p.Row, p.Col)
			board.Place(np)
			changed = append(changed, np)
		}
	}
	return changed
}
