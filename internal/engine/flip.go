package engine

import "github.com/lgbarn/kwazam-go/internal/chess"

// flipBoard returns a new board with every occupant of (r, c) moved to
// (LastRow-r, c) and its stored coordinates updated. The caller swaps the
// result in whole; the source grid must not be used afterwards.
func flipBoard(board *chess.Board) *chess.Board {
	flipped := chess.NewBoard()
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			p := board.Squares[row][col]
			if p == nil {
				continue
			}
			p.SetPosition(chess.LastRow-row, col)
			flipped.Squares[chess.LastRow-row][col] = p
		}
	}
	return flipped
}
