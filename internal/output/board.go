// Package output renders Kwazam positions as text diagrams or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lgbarn/kwazam-go/internal/chess"
	"github.com/lgbarn/kwazam-go/internal/engine"
)

// Cell markers used in board diagrams.
const (
	emptyCell     = " .. "
	highlightCell = " ** "
)

var bannerCaser = cases.Upper(language.English)

// sideLetter returns the lower-case initial used in diagrams.
func sideLetter(s chess.Side) byte {
	if s == chess.Blue {
		return 'b'
	}
	return 'p'
}

// pieceCode returns the two-letter diagram code of p, e.g. "pT".
func pieceCode(p *chess.Piece) string {
	return string([]byte{sideLetter(p.Side), p.Kind.Letter()})
}

// View is the part of a game a diagram shows.
type View struct {
	Board      *chess.Board
	ToMove     chess.Side
	Selected   *chess.Piece
	Highlights [][2]int
	Over       bool
	Winner     chess.Side
}

// ViewOf captures the current view of g. Highlights are the legal
// destinations of the selected piece, if any.
func ViewOf(g *engine.Game) View {
	v := View{
		Board:  g.Board(),
		ToMove: g.SideToMove(),
		Over:   g.Over(),
	}
	if sel, ok := g.Selection(); ok {
		v.Selected = sel
		v.Highlights = g.SelectedDestinations()
	}
	if winner, ok := g.Winner(); ok {
		v.Winner = winner
	}
	return v
}

// WriteBoard draws v as a text diagram. Row 0 is printed first.
// Selected pieces are bracketed, highlighted empty cells show "**" and
// highlighted captures are starred.
func WriteBoard(w io.Writer, v View) error {
	marks := make(map[[2]int]bool, len(v.Highlights))
	for _, h := range v.Highlights {
		marks[h] = true
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < chess.Cols; col++ {
		fmt.Fprintf(&sb, "  %d ", col)
	}
	sb.WriteString("\n")

	for row := 0; row < chess.Rows; row++ {
		fmt.Fprintf(&sb, "%d  ", row)
		for col := 0; col < chess.Cols; col++ {
			sb.WriteString(cellText(v, row, col, marks[[2]int{row, col}]))
		}
		sb.WriteString("\n")
	}

	if v.Over {
		fmt.Fprintf(&sb, "%s WINS!\n", bannerCaser.String(v.Winner.String()))
	} else {
		fmt.Fprintf(&sb, "%s to move\n", v.ToMove)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func cellText(v View, row, col int, marked bool) string {
	p := v.Board.Get(row, col)
	if p == nil || !p.Active {
		if marked {
			return highlightCell
		}
		return emptyCell
	}
	code := pieceCode(p)
	switch {
	case v.Selected != nil && v.Selected.Row == row && v.Selected.Col == col:
		return "[" + code + "]"
	case marked:
		return "*" + code + "*"
	}
	return " " + code + " "
}

// WriteOutcome prints a one-line report of a movement outcome. Selections
// are silent.
func WriteOutcome(w io.Writer, out engine.Outcome) error {
	var line string
	switch out.Kind {
	case engine.Rejected:
		line = "! " + out.Reason()
	case engine.Moved, engine.MovedGameOver:
		line = "moved"
		if out.Captured != nil {
			line += fmt.Sprintf(", captured %s %s", out.Captured.Side, out.Captured.Kind)
		}
		for _, p := range out.Transformed {
			line += fmt.Sprintf(", %s at (%d,%d) became %s", p.Kind.Transformed(), p.Row, p.Col, p.Kind)
		}
		if out.Kind == engine.MovedGameOver {
			line += fmt.Sprintf("; %s wins", out.Winner)
		}
	default:
		return nil
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
