// Package chess provides the core Kwazam chess types: sides, piece kinds,
// pieces and the 8x5 board.
package chess

import (
	"strings"

	"golang.org/x/text/cases"
)

// Board dimensions.
const (
	Rows = 8
	Cols = 5

	LastRow = Rows - 1
)

// Side represents the colour of a piece or player.
type Side int

const (
	Pink Side = iota
	Blue
)

// String returns the display name of a side.
func (s Side) String() string {
	if s == Blue {
		return "Blue"
	}
	return "Pink"
}

// Code returns the upper-case form used in save files.
func (s Side) Code() string {
	if s == Blue {
		return "BLUE"
	}
	return "PINK"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == Pink {
		return Blue
	}
	return Pink
}

// Sides lists both sides in a stable order.
var Sides = [2]Side{Pink, Blue}

// ParseSide converts a side name ("pink", "BLUE", ...) into a Side.
func ParseSide(name string) (Side, bool) {
	switch fold(name) {
	case "pink":
		return Pink, true
	case "blue":
		return Blue, true
	}
	return Pink, false
}

// Kind represents a piece kind. The set is closed.
type Kind int

const (
	Ram Kind = iota
	Biz
	Tor
	Xor
	Sau
	NumKinds
)

var kindNames = [NumKinds]string{"Ram", "Biz", "Tor", "Xor", "Sau"}

// String returns the canonical name of a kind.
func (k Kind) String() string {
	if k >= 0 && k < NumKinds {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns a single-letter abbreviation for board diagrams.
func (k Kind) Letter() byte {
	if k >= 0 && k < NumKinds {
		return kindNames[k][0]
	}
	return '?'
}

// IsSliding reports whether the kind slides along lines (Tor, Xor).
func (k Kind) IsSliding() bool {
	return k == Tor || k == Xor
}

// IsRoyal reports whether losing this kind loses the game.
func (k Kind) IsRoyal() bool {
	return k == Sau
}

// Transformed returns the other form of a time-boxed kind.
// Kinds without a second form are returned unchanged.
func (k Kind) Transformed() Kind {
	switch k {
	case Tor:
		return Xor
	case Xor:
		return Tor
	}
	return k
}

// ParseKind converts a kind name into a Kind, ignoring case.
func ParseKind(name string) (Kind, bool) {
	folded := fold(name)
	for k, n := range kindNames {
		if fold(n) == folded {
			return Kind(k), true
		}
	}
	return 0, false
}

// fold returns the case-folded, trimmed form of s for case-insensitive
// comparisons.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
