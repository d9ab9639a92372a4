package engine

import "github.com/lgbarn/kwazam-go/internal/chess"

// isLineClear checks that every cell strictly between (fromRow, fromCol) and
// (toRow, toCol) is empty. The two cells must share a row, a column or a
// diagonal.
func isLineClear(board *chess.Board, fromRow, fromCol, toRow, toCol int) bool {
	rowDir := sign(toRow - fromRow)
	colDir := sign(toCol - fromCol)

	row := fromRow + rowDir
	col := fromCol + colDir

	for row != toRow || col != toCol {
		if !board.IsEmpty(row, col) {
			return false
		}
		row += rowDir
		col += colDir
	}

	return true
}

// isStraightClear checks a Tor's path along a row or column.
func isStraightClear(board *chess.Board, fromRow, fromCol, toRow, toCol int) bool {
	if fromRow != toRow && fromCol != toCol {
		return false
	}
	return isLineClear(board, fromRow, fromCol, toRow, toCol)
}

// isDiagonalClear checks an Xor's path along a diagonal.
func isDiagonalClear(board *chess.Board, fromRow, fromCol, toRow, toCol int) bool {
	if abs(toRow-fromRow) != abs(toCol-fromCol) {
		return false
	}
	return isLineClear(board, fromRow, fromCol, toRow, toCol)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
