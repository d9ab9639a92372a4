// Package errors provides sentinel errors and error types for the Kwazam
// engine. Structured types keep the context of a rejected move or a
// skipped save-file line while allowing inspection with errors.Is() and
// errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrEmptyCell indicates a selection on a cell with no piece.
	ErrEmptyCell = errors.New("no piece at this position to select")

	// ErrNotYourTurn indicates a selection of an inactive or opposing piece.
	ErrNotYourTurn = errors.New("it is not your turn")

	// ErrOwnPiece indicates a move onto a cell held by the mover's own piece.
	ErrOwnPiece = errors.New("cannot move to a position occupied by your own piece")

	// ErrIllegalMove indicates a destination the piece cannot reach.
	ErrIllegalMove = errors.New("invalid move")

	// ErrOutOfBounds indicates coordinates outside the 8x5 board.
	ErrOutOfBounds = errors.New("position is off the board")

	// ErrGameOver indicates a move attempted after a Sau was captured.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidSave indicates a save file that cannot be read as a game.
	ErrInvalidSave = errors.New("invalid save file")

	// ErrMissingSau indicates a save file without exactly one Sau per side.
	ErrMissingSau = errors.New("missing one or both Sau")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError describes a rejected selection or move.
type MoveError struct {
	Err   error  // The underlying sentinel
	Row   int    // Target row of the rejected call
	Col   int    // Target column of the rejected call
	Piece string // Selected piece kind, if any
}

// Error returns the notice shown to the player, e.g. "invalid move for Biz".
func (e *MoveError) Error() string {
	msg := "move rejected"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Piece != "" && errors.Is(e.Err, ErrIllegalMove) {
		msg += " for " + e.Piece
	}
	return fmt.Sprintf("%s (%d,%d)", msg, e.Row, e.Col)
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError describes a save-file line that could not be used.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name (if known)
	Line int    // Line number (1-based)
	Text string // The offending line
}

// Error returns a formatted message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Text))
	}

	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}
