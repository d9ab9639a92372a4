package main

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/lgbarn/kwazam-go/internal/chess"
	"github.com/lgbarn/kwazam-go/internal/config"
	"github.com/lgbarn/kwazam-go/internal/engine"
	"github.com/lgbarn/kwazam-go/internal/results"
	"github.com/lgbarn/kwazam-go/internal/testutil"
)

func TestSplitCommandLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"simple args", "7 0", []string{"7", "0"}},
		{"double quoted string", `save "my game.txt"`, []string{"save", "my game.txt"}},
		{"single quoted string", `load 'old game.txt'`, []string{"load", "old game.txt"}},
		{"empty string", "", nil},
		{"tabs as separators", "6\t2", []string{"6", "2"}},
		{"multiple spaces", "  moves   ", []string{"moves"}},
		{"empty quotes", `save ""`, []string{"save", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCommandLine(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCommandLine(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		args    []string
		row     int
		col     int
		wantErr bool
	}{
		{[]string{"6", "2"}, 6, 2, false},
		{[]string{"6,2"}, 6, 2, false},
		{[]string{"-1", "9"}, -1, 9, false},
		{[]string{"a", "2"}, 0, 0, true},
		{[]string{"6"}, 0, 0, true},
		{[]string{"1", "2", "3"}, 0, 0, true},
	}

	for _, tt := range tests {
		row, col, err := parseCell(tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCell(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && (row != tt.row || col != tt.col) {
			t.Errorf("parseCell(%q) = (%d,%d), want (%d,%d)", tt.args, row, col, tt.row, tt.col)
		}
	}
}

// testSession returns a session writing to the returned buffer, with its
// save file in a temporary directory.
func testSession(t *testing.T, store *results.Store) (*session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&out).
		WithLog(&out).
		WithSaveFile(filepath.Join(t.TempDir(), config.DefaultSaveFile)).
		Build()
	return newSession(cfg, engine.NewGame(cfg), store), &out
}

func runScript(t *testing.T, s *session, lines ...string) {
	t.Helper()
	if err := s.run(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestSession_MoveAndMoves(t *testing.T) {
	s, out := testSession(t, nil)
	runScript(t, s,
		"# opening",
		"6 1",
		"moves",
		"5 1",
	)

	got := out.String()
	testutil.AssertContains(t, got, "Pink Ram at (6,1) can move to (5,1)")
	testutil.AssertContains(t, got, "6   pR [pR] pR  pR  pR \n")
	testutil.AssertContains(t, got, "moved\n")
	testutil.AssertContains(t, got, "Blue to move")
	testutil.AssertEqual(t, s.game.SideToMove(), chess.Blue)
}

func TestSession_Rejections(t *testing.T) {
	s, out := testSession(t, nil)
	runScript(t, s,
		"moves",
		"3 3",
		"0 0",
		"9 9",
		"castle",
		"stats",
	)

	got := out.String()
	testutil.AssertContains(t, got, "no piece selected")
	testutil.AssertContains(t, got, "! no piece at this position to select (3,3)")
	testutil.AssertContains(t, got, "! it is not your turn (0,0)")
	testutil.AssertContains(t, got, "! position is off the board (9,9)")
	testutil.AssertContains(t, got, `! unknown command "castle" (try help)`)
	testutil.AssertContains(t, got, "! results are not being recorded")
}

func TestSession_SaveAndLoad(t *testing.T) {
	s, out := testSession(t, nil)
	path := filepath.Join(t.TempDir(), "my game.txt")

	runScript(t, s,
		"6 0", "5 0",
		`save "`+path+`"`,
		"new",
		`load "`+path+`"`,
	)

	testutil.AssertContains(t, out.String(), "saved to "+path)
	testutil.AssertContains(t, out.String(), "loaded "+path)
	testutil.AssertEqual(t, s.game.SideToMove(), chess.Blue)

	// Without an argument the configured save file is used.
	runScript(t, s, "save")
	if _, err := os.Stat(s.cfg.SaveFile); err != nil {
		t.Fatalf("default save file not written: %v", err)
	}
}

// winningPosition has Pink's Tor one move away from Blue's Sau.
const winningPosition = "Pink Turn\nSau,7,2,PINK\nTor,7,0,PINK\nSau,0,0,BLUE\n"

func TestSession_WinIsRecordedOnce(t *testing.T) {
	store, err := results.OpenInMemory()
	testutil.AssertNoError(t, err)
	defer store.Close()

	path := filepath.Join(t.TempDir(), "endgame.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte(winningPosition), 0o600))

	s, out := testSession(t, store)
	runScript(t, s,
		"load "+path,
		"7 0", "0 0",
		"3 3",
		"stats",
	)

	got := out.String()
	testutil.AssertContains(t, got, "moved, captured Blue Sau; Pink wins")
	testutil.AssertContains(t, got, "PINK WINS!")
	testutil.AssertContains(t, got, "! game is over (3,3)")
	testutil.AssertContains(t, got, "games played: 1, Pink wins: 1, Blue wins: 0, last winner: Pink")

	tally, err := store.Load()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, tally.GamesPlayed, 1)
}

func TestSession_LoadMissingSauStartsNewGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("Blue Turn\nSau,7,2,PINK\n"), 0o600))

	s, out := testSession(t, nil)
	runScript(t, s, "load "+path)

	testutil.AssertContains(t, out.String(), "missing one or both Sau")
	testutil.AssertEqual(t, s.game.SideToMove(), chess.Pink)
	testutil.AssertBoardsEqual(t, s.game.Board(), chess.NewInitialBoard())
}

func TestSession_QuitStopsReading(t *testing.T) {
	s, _ := testSession(t, nil)
	runScript(t, s, "quit", "6 0", "5 0")
	testutil.AssertEqual(t, s.game.SideToMove(), chess.Pink)
}

func TestSession_JSONOutput(t *testing.T) {
	var out bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&out).WithLog(&out).WithJSONOutput(true).Build()
	s := newSession(cfg, engine.NewGame(cfg), nil)
	runScript(t, s, "board")

	testutil.AssertContains(t, out.String(), `"toMove": "PINK"`)
	testutil.AssertContains(t, out.String(), `"kind": "Sau"`)
}
