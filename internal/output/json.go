package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/kwazam-go/internal/chess"
	"github.com/lgbarn/kwazam-go/internal/engine"
)

// JSONState represents a position in JSON format.
type JSONState struct {
	ToMove     string      `json:"toMove"`
	Over       bool        `json:"over"`
	Winner     string      `json:"winner,omitempty"`
	Selected   *JSONPiece  `json:"selected,omitempty"`
	Highlights []JSONCell  `json:"highlights,omitempty"`
	Pieces     []JSONPiece `json:"pieces"`
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Kind     string `json:"kind"`
	Side     string `json:"side"` // "PINK" or "BLUE"
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Moves    int    `json:"moves,omitempty"`
	Reversed bool   `json:"reversed,omitempty"`
}

// JSONCell is a board coordinate.
type JSONCell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// JSONOutput holds several snapshots for array output.
type JSONOutput struct {
	States []*JSONState `json:"states"`
}

// ViewToJSON converts a view to its JSON form. Pieces are listed in
// row-major order.
func ViewToJSON(v View) *JSONState {
	js := &JSONState{
		ToMove: v.ToMove.Code(),
		Over:   v.Over,
		Pieces: make([]JSONPiece, 0, chess.Rows*chess.Cols),
	}
	if v.Over {
		js.Winner = v.Winner.Code()
	}
	if v.Selected != nil {
		sel := pieceToJSON(v.Selected)
		js.Selected = &sel
	}
	for _, h := range v.Highlights {
		js.Highlights = append(js.Highlights, JSONCell{Row: h[0], Col: h[1]})
	}
	for _, p := range v.Board.Pieces() {
		if p.Active {
			js.Pieces = append(js.Pieces, pieceToJSON(p))
		}
	}
	return js
}

// GameToJSON converts the current state of g to JSON format.
func GameToJSON(g *engine.Game) *JSONState {
	return ViewToJSON(ViewOf(g))
}

func pieceToJSON(p *chess.Piece) JSONPiece {
	return JSONPiece{
		Kind:     p.Kind.String(),
		Side:     p.Side.Code(),
		Row:      p.Row,
		Col:      p.Col,
		Moves:    p.Moves,
		Reversed: p.Reversed,
	}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
