package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	for _, sentinel := range []error{
		ErrEmptyCell, ErrNotYourTurn, ErrOwnPiece, ErrIllegalMove,
		ErrOutOfBounds, ErrGameOver, ErrInvalidSave, ErrMissingSau, ErrInvalidConfig,
	} {
		wrapped := fmt.Errorf("loading game: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
	}
}

// TestMoveError_Error verifies the notice text shown to players
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		excludes []string
	}{
		{
			name:     "illegal move names the piece",
			err:      &MoveError{Err: ErrIllegalMove, Row: 3, Col: 2, Piece: "Biz"},
			contains: []string{"invalid move for Biz", "(3,2)"},
		},
		{
			name:     "own piece ignores the piece name",
			err:      &MoveError{Err: ErrOwnPiece, Row: 7, Col: 0, Piece: "Tor"},
			contains: []string{"your own piece"},
			excludes: []string{"for Tor"},
		},
		{
			name:     "no cause",
			err:      &MoveError{Row: 1, Col: 1},
			contains: []string{"move rejected"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("MoveError.Error() = %q, should not contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies errors.As works through wrapping
func TestMoveError_As(t *testing.T) {
	wrapped := fmt.Errorf("executing movement: %w", &MoveError{Err: ErrNotYourTurn, Row: 0, Col: 2})

	var moveErr *MoveError
	if !errors.As(wrapped, &moveErr) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if moveErr.Col != 2 {
		t.Errorf("moveErr.Col = %d, want 2", moveErr.Col)
	}
	if !errors.Is(wrapped, ErrNotYourTurn) {
		t.Error("errors.Is(wrapped, ErrNotYourTurn) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "file and line",
			err:  &ParseError{Err: ErrInvalidSave, File: "Saved_game.txt", Line: 4, Text: "Ram,x,0,PINK"},
			want: `Saved_game.txt:4: invalid save file: "Ram,x,0,PINK"`,
		},
		{
			name: "line only",
			err:  &ParseError{Err: ErrInvalidSave, Line: 2},
			want: "line 2: invalid save file",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidSave, Line: 1}
	if !errors.Is(parseErr, ErrInvalidSave) {
		t.Error("errors.Is(parseErr, ErrInvalidSave) = false, want true")
	}
}

// TestWrap verifies the Wrap and Wrapf helpers
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrapf(ErrMissingSau, "loading %s", "game.txt")
	if !errors.Is(wrapped, ErrMissingSau) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "loading game.txt") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
