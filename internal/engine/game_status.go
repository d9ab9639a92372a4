package engine

import "github.com/lgbarn/kwazam-go/internal/chess"

// IsGameOver reports whether side has lost its Sau.
func IsGameOver(board *chess.Board, side chess.Side) bool {
	for _, p := range board.Pieces() {
		if p.Active && p.Side == side && p.Kind.IsRoyal() {
			return false
		}
	}
	return true
}

// EitherSideLost reports whether either Sau is missing.
func EitherSideLost(board *chess.Board) bool {
	return IsGameOver(board, chess.Pink) || IsGameOver(board, chess.Blue)
}
