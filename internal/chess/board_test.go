package chess

import "testing"

func TestNewInitialBoard(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		row, col int
		kind     Kind
		side     Side
	}{
		{0, 0, Xor, Blue},
		{0, 2, Sau, Blue},
		{0, 4, Tor, Blue},
		{1, 3, Ram, Blue},
		{6, 0, Ram, Pink},
		{7, 0, Tor, Pink},
		{7, 1, Biz, Pink},
		{7, 2, Sau, Pink},
		{7, 4, Xor, Pink},
	}
	for _, tt := range tests {
		p := b.Get(tt.row, tt.col)
		if p == nil {
			t.Fatalf("Get(%d, %d) = nil, want %s %s", tt.row, tt.col, tt.side, tt.kind)
		}
		if p.Kind != tt.kind || p.Side != tt.side {
			t.Errorf("Get(%d, %d) = %s %s, want %s %s", tt.row, tt.col, p.Side, p.Kind, tt.side, tt.kind)
		}
		if p.Row != tt.row || p.Col != tt.col {
			t.Errorf("piece at (%d, %d) stores (%d, %d)", tt.row, tt.col, p.Row, p.Col)
		}
		if !p.Active {
			t.Errorf("piece at (%d, %d) is inactive", tt.row, tt.col)
		}
	}

	for row := 2; row <= 5; row++ {
		for col := 0; col < Cols; col++ {
			if !b.IsEmpty(row, col) {
				t.Errorf("IsEmpty(%d, %d) = false, want true", row, col)
			}
		}
	}

	if got := len(b.Pieces()); got != 20 {
		t.Errorf("len(Pieces()) = %d, want 20", got)
	}
	if got := b.Count(Sau, Pink); got != 1 {
		t.Errorf("Count(Sau, Pink) = %d, want 1", got)
	}
}

func TestBoard_GetOffBoard(t *testing.T) {
	b := NewInitialBoard()
	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}} {
		if p := b.Get(cell[0], cell[1]); p != nil {
			t.Errorf("Get(%d, %d) = %v, want nil", cell[0], cell[1], p)
		}
	}
	// Set off the board is ignored.
	b.Set(Rows, 0, NewPiece(Ram, Pink, Rows, 0))
}

func TestBoard_CopyIsDeep(t *testing.T) {
	b := NewInitialBoard()
	c := b.Copy()

	c.Get(7, 0).Moves = 5
	c.Set(4, 4, NewPiece(Biz, Pink, 4, 4))

	if b.Get(7, 0).Moves != 0 {
		t.Error("modifying copied piece changed the original")
	}
	if !b.IsEmpty(4, 4) {
		t.Error("placing on the copy changed the original")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"Ram", Ram, true},
		{"biz", Biz, true},
		{"TOR", Tor, true},
		{" xor ", Xor, true},
		{"sAu", Sau, true},
		{"King", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseKind(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"PINK": Pink, "pink": Pink, "Blue": Blue} {
		got, ok := ParseSide(in)
		if !ok || got != want {
			t.Errorf("ParseSide(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := ParseSide("green"); ok {
		t.Error(`ParseSide("green") ok = true, want false`)
	}
}

func TestKind_Transformed(t *testing.T) {
	if Tor.Transformed() != Xor || Xor.Transformed() != Tor {
		t.Error("Tor and Xor should transform into each other")
	}
	for _, k := range []Kind{Ram, Biz, Sau} {
		if k.Transformed() != k {
			t.Errorf("%s.Transformed() = %s, want unchanged", k, k.Transformed())
		}
	}
}

func TestSide_Opposite(t *testing.T) {
	if Pink.Opposite() != Blue || Blue.Opposite() != Pink {
		t.Error("Opposite() should swap Pink and Blue")
	}
	if Pink.Code() != "PINK" || Blue.Code() != "BLUE" {
		t.Errorf("Code() = %q/%q, want PINK/BLUE", Pink.Code(), Blue.Code())
	}
}

func TestPiece_Forward(t *testing.T) {
	p := NewPiece(Ram, Pink, 6, 0)
	if p.Forward() != -1 {
		t.Errorf("Forward() = %d, want -1", p.Forward())
	}
	p.Reversed = true
	if p.Forward() != 1 {
		t.Errorf("reversed Forward() = %d, want 1", p.Forward())
	}
}
