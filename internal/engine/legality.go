// Package engine implements the Kwazam rules: move legality, the two-call
// selection protocol, Tor/Xor transformation, board reorientation, win
// detection and the save-file codec.
package engine

import "github.com/lgbarn/kwazam-go/internal/chess"

// IsLegalDestination reports whether piece may move from its current cell
// to (toRow, toCol). A destination held by the piece's own side is never
// legal; one held by the other side is a capture.
func IsLegalDestination(board *chess.Board, piece *chess.Piece, toRow, toCol int) bool {
	if piece == nil || !chess.InBounds(toRow, toCol) {
		return false
	}
	fromRow, fromCol := piece.Row, piece.Col
	if fromRow == toRow && fromCol == toCol {
		return false
	}
	if target := board.Get(toRow, toCol); target != nil && target.Side == piece.Side {
		return false
	}
	return canPieceMove(board, piece, fromRow, fromCol, toRow, toCol)
}

// canPieceMove checks the geometry of a move for the piece's kind.
func canPieceMove(board *chess.Board, piece *chess.Piece, fromRow, fromCol, toRow, toCol int) bool {
	rowDiff := abs(toRow - fromRow)
	colDiff := abs(toCol - fromCol)

	switch piece.Kind {
	case chess.Biz:
		return (rowDiff == 2 && colDiff == 1) || (rowDiff == 1 && colDiff == 2)

	case chess.Tor:
		return isStraightClear(board, fromRow, fromCol, toRow, toCol)

	case chess.Xor:
		return isDiagonalClear(board, fromRow, fromCol, toRow, toCol)

	case chess.Sau:
		return rowDiff <= 1 && colDiff <= 1

	case chess.Ram:
		return toCol == fromCol && toRow-fromRow == piece.Forward()
	}

	return false
}

// LegalDestinations returns every cell the piece may move to, in row-major
// order. Front ends use it to highlight targets for a selected piece.
func LegalDestinations(board *chess.Board, piece *chess.Piece) [][2]int {
	var cells [][2]int
	for row := 0; row < chess.Rows; row++ {
		for col := 0; col < chess.Cols; col++ {
			if IsLegalDestination(board, piece, row, col) {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}
