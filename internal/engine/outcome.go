package engine

import "github.com/lgbarn/kwazam-go/internal/chess"

// OutcomeKind classifies the result of one ExecuteMovement call.
type OutcomeKind int

const (
	// Selected means a piece was picked up; no move was made.
	Selected OutcomeKind = iota
	// Rejected means the call changed nothing except clearing any selection.
	Rejected
	// Moved means a move completed and the game continues.
	Moved
	// MovedGameOver means a move completed and captured a Sau.
	MovedGameOver
)

// String returns the name of an outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Selected:
		return "selected"
	case Rejected:
		return "rejected"
	case Moved:
		return "moved"
	case MovedGameOver:
		return "moved-and-gameover"
	}
	return "unknown"
}

// Outcome is the result of one ExecuteMovement call.
type Outcome struct {
	Kind OutcomeKind

	// Err is a *errors.MoveError explaining a Rejected outcome.
	Err error

	// Winner is set for MovedGameOver.
	Winner chess.Side

	// Captured is the piece taken by the move, if any.
	Captured *chess.Piece

	// Transformed lists the Tor/Xor replacements made after the move.
	Transformed []*chess.Piece
}

// MoveMade reports whether a piece was relocated.
func (o Outcome) MoveMade() bool {
	return o.Kind == Moved || o.Kind == MovedGameOver
}

// Reason returns the player-facing notice of a rejection, or "".
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
