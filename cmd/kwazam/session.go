package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/kwazam-go/internal/config"
	"github.com/lgbarn/kwazam-go/internal/engine"
	"github.com/lgbarn/kwazam-go/internal/errors"
	"github.com/lgbarn/kwazam-go/internal/output"
	"github.com/lgbarn/kwazam-go/internal/results"
)

const commandHelp = `  <row> <col>    click a cell: select a piece, then its destination
  moves          show the selected piece's legal destinations
  board          print the board
  save [file]    save the game
  load [file]    load a saved game
  new            start a new game
  stats          show recorded results
  help           show this list
  quit           leave
`

// session drives one game from a stream of text commands.
type session struct {
	cfg         *config.Config
	game        *engine.Game
	store       *results.Store
	out         io.Writer
	states      output.StateWriter
	interactive bool

	// recorded is set once the current game's winner is in the store.
	recorded bool
}

func newSession(cfg *config.Config, game *engine.Game, store *results.Store) *session {
	return &session{
		cfg:    cfg,
		game:   game,
		store:  store,
		out:    cfg.OutputFile,
		states: output.NewStateWriter(cfg.OutputFile, cfg),
	}
}

// run reads commands until EOF or quit.
func (s *session) run(r io.Reader) error {
	defer s.states.Close()

	s.showBoard()
	scanner := bufio.NewScanner(r)
	for {
		s.prompt()
		if !scanner.Scan() {
			break
		}
		quit, err := s.execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "! %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

func (s *session) prompt() {
	if s.interactive {
		fmt.Fprintf(s.out, "%s> ", s.game.SideToMove())
	}
}

// execute runs one command line. Errors are reported to the player and
// never end the session.
func (s *session) execute(line string) (quit bool, err error) {
	args := splitCommandLine(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "#") {
		return false, nil
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
	case "board":
		s.showBoard()
	case "moves":
		s.showMoves()
	case "new":
		s.game.StartNewGame()
		s.recorded = false
		s.showBoard()
	case "save":
		return false, s.save(args[1:])
	case "load":
		return false, s.load(args[1:])
	case "stats":
		return false, s.stats()
	default:
		row, col, perr := parseCell(args)
		if perr != nil {
			return false, fmt.Errorf("unknown command %q (try help)", cmd)
		}
		s.click(row, col)
	}
	return false, nil
}

// click forwards a cell click to the engine and reports the outcome.
func (s *session) click(row, col int) {
	out := s.game.ExecuteMovement(row, col)
	output.WriteOutcome(s.out, out) //nolint:errcheck // terminal output
	switch out.Kind {
	case engine.Moved:
		s.showBoard()
	case engine.MovedGameOver:
		s.showBoard()
		s.recordWin(out)
	}
}

func (s *session) recordWin(out engine.Outcome) {
	if s.store == nil || s.recorded {
		return
	}
	tally, err := s.store.RecordWin(out.Winner)
	if err != nil {
		s.cfg.Logf(config.Warnings, "%v", err)
		return
	}
	s.recorded = true
	s.cfg.Logf(config.Commentary, "Result recorded (%s)", tally)
}

func (s *session) showBoard() {
	s.states.WriteState(output.ViewOf(s.game)) //nolint:errcheck // terminal output
}

func (s *session) showMoves() {
	sel, ok := s.game.Selection()
	if !ok {
		fmt.Fprintln(s.out, "no piece selected")
		return
	}
	dests := s.game.SelectedDestinations()
	cells := make([]string, 0, len(dests))
	for _, d := range dests {
		cells = append(cells, fmt.Sprintf("(%d,%d)", d[0], d[1]))
	}
	if len(cells) == 0 {
		fmt.Fprintf(s.out, "%s has no legal moves\n", sel)
	} else {
		fmt.Fprintf(s.out, "%s can move to %s\n", sel, strings.Join(cells, " "))
	}
	s.showBoard()
}

func (s *session) fileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return s.cfg.SaveFile
}

func (s *session) save(args []string) error {
	path := s.fileArg(args)
	if err := s.game.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "saved to %s\n", path)
	return nil
}

func (s *session) load(args []string) error {
	path := s.fileArg(args)
	err := s.game.Load(path)
	if errors.Is(err, errors.ErrMissingSau) {
		// The engine fell back to a new game.
		s.recorded = false
		s.showBoard()
		return err
	}
	if err != nil {
		return err
	}
	s.recorded = false
	fmt.Fprintf(s.out, "loaded %s\n", path)
	s.showBoard()
	return nil
}

func (s *session) stats() error {
	if s.store == nil {
		return errors.New("results are not being recorded")
	}
	tally, err := s.store.Load()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, tally)
	return nil
}

// parseCell reads a "<row> <col>" or "<row>,<col>" click.
func parseCell(args []string) (row, col int, err error) {
	if len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected <row> <col>")
	}
	if row, err = strconv.Atoi(strings.TrimSpace(args[0])); err != nil {
		return 0, 0, err
	}
	if col, err = strconv.Atoi(strings.TrimSpace(args[1])); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// splitCommandLine splits a command into words. Single or double quotes
// group words containing spaces.
func splitCommandLine(line string) []string {
	var words []string
	var cur strings.Builder
	var quote rune
	inWord := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words
}
