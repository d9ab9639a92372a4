package engine

import (
	"github.com/lgbarn/kwazam-go/internal/chess"
	"github.com/lgbarn/kwazam-go/internal/config"
	"github.com/lgbarn/kwazam-go/internal/errors"
)

// Game holds the state of one Kwazam game: the board, the side to move and
// the pending selection of a two-call move gesture. A Game is driven by a
// single caller and is not safe for concurrent use.
type Game struct {
	cfg *config.Config

	board  *chess.Board
	toMove chess.Side

	// Selection state between the two calls of a move gesture.
	selected       *chess.Piece
	selRow, selCol int

	over   bool
	winner chess.Side
}

// NewGame creates a game in the standard starting position. A nil cfg
// selects the defaults.
func NewGame(cfg *config.Config) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{cfg: cfg}
	g.ResetGame()
	return g
}

// StartNewGame discards the current game and sets up the standard position.
func (g *Game) StartNewGame() {
	g.ResetGame()
}

// ResetGame restores the standard position with Pink to move.
func (g *Game) ResetGame() {
	g.LoadPosition(chess.NewInitialBoard(), chess.Pink)
}

// LoadPosition replaces the board and side to move, clearing any selection
// and the game-over latch. The game takes ownership of board.
func (g *Game) LoadPosition(board *chess.Board, toMove chess.Side) {
	g.board = board
	g.toMove = toMove
	g.clearSelection()
	g.over = EitherSideLost(board)
	g.winner = toMove.Opposite()
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// SideToMove returns the side whose turn it is.
func (g *Game) SideToMove() chess.Side {
	return g.toMove
}

// Selection returns a copy of the selected piece, if a gesture is pending.
func (g *Game) Selection() (*chess.Piece, bool) {
	if g.selected == nil {
		return nil, false
	}
	return g.selected.Clone(), true
}

// SelectedDestinations returns the legal targets of the selected piece.
func (g *Game) SelectedDestinations() [][2]int {
	if g.selected == nil {
		return nil
	}
	return LegalDestinations(g.board, g.selected)
}

// IsGameOver reports whether side has lost its Sau.
func (g *Game) IsGameOver(side chess.Side) bool {
	return IsGameOver(g.board, side)
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.over
}

// Winner returns the winning side once the game has ended.
func (g *Game) Winner() (chess.Side, bool) {
	return g.winner, g.over
}

// ExecuteMovement handles one cell click. With no selection it tries to
// pick up the piece at (row, col); with a selection it tries to move the
// selected piece there. Every rejection clears the selection.
func (g *Game) ExecuteMovement(row, col int) Outcome {
	if g.over {
		return g.reject(errors.ErrGameOver, row, col)
	}
	if !chess.InBounds(row, col) {
		return g.reject(errors.ErrOutOfBounds, row, col)
	}
	if g.selected == nil {
		return g.selectPiece(row, col)
	}
	return g.moveSelected(row, col)
}

// selectPiece handles the first call of a move gesture.
func (g *Game) selectPiece(row, col int) Outcome {
	piece := g.board.Get(row, col)
	if piece == nil {
		return g.reject(errors.ErrEmptyCell, row, col)
	}
	if !piece.Active || piece.Side != g.toMove {
		return g.reject(errors.ErrNotYourTurn, row, col)
	}

	g.selected = piece
	g.selRow, g.selCol = row, col
	return Outcome{Kind: Selected}
}

// moveSelected handles the second call of a move gesture.
func (g *Game) moveSelected(row, col int) Outcome {
	piece := g.selected

	if target := g.board.Get(row, col); target != nil && target.Side == piece.Side {
		return g.reject(errors.ErrOwnPiece, row, col)
	}
	if !IsLegalDestination(g.board, piece, row, col) {
		return g.reject(errors.ErrIllegalMove, row, col)
	}

	mover := g.toMove
	out := Outcome{Kind: Moved}

	g.board.Set(g.selRow, g.selCol, nil)
	if target := g.board.Get(row, col); target != nil {
		target.Capture()
		g.board.Set(row, col, nil)
		out.Captured = target.Clone()
		g.cfg.Logf(config.Commentary, "%s %s was captured at (%d, %d).", target.Kind, target.Side.Code(), row, col)
	}
	piece.SetPosition(row, col)
	g.board.Place(piece)
	turnRam(piece)

	countSideMove(g.board, mover)
	for _, p := range applyTransformations(g.board) {
		out.Transformed = append(out.Transformed, p.Clone())
		g.cfg.Logf(config.Commentary, "%s %s transformed at (%d, %d).", p.Side, p.Kind, p.Row, p.Col)
	}

	if EitherSideLost(g.board) {
		g.over = true
		g.winner = mover
		out.Kind = MovedGameOver
		out.Winner = mover
	} else {
		g.board = flipBoard(g.board)
	}

	g.toMove = mover.Opposite()
	g.clearSelection()
	g.cfg.Logf(config.Commentary, "Next turn: %s", g.toMove)
	return out
}

// turnRam reverses a Ram that has reached the far edge in its direction of
// travel.
func turnRam(p *chess.Piece) {
	if p.Kind != chess.Ram {
		return
	}
	if (!p.Reversed && p.Row == 0) || (p.Reversed && p.Row == chess.LastRow) {
		p.Reversed = !p.Reversed
	}
}

func (g *Game) reject(cause error, row, col int) Outcome {
	err := &errors.MoveError{Err: cause, Row: row, Col: col}
	if g.selected != nil {
		err.Piece = g.selected.Kind.String()
	}
	g.clearSelection()
	g.cfg.Logf(config.Commentary, "%v", err)
	return Outcome{Kind: Rejected, Err: err}
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.selRow, g.selCol = -1, -1
}
