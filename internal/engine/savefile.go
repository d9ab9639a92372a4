package engine

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lgbarn/kwazam-go/internal/chess"
	"github.com/lgbarn/kwazam-go/internal/config"
	"github.com/lgbarn/kwazam-go/internal/errors"
)

// Turn labels used as the first line of a save file.
const (
	PinkTurnLabel = "Pink Turn"
	BlueTurnLabel = "Blue Turn"
)

// saveFields is the number of comma-separated fields in a piece record.
const saveFields = 4

// SavedGame is the content of a save file.
type SavedGame struct {
	Board  *chess.Board
	ToMove chess.Side

	// Skipped holds one *errors.ParseError per unusable piece line.
	Skipped []error
}

// TurnLabel returns the save-file header for side.
func TurnLabel(side chess.Side) string {
	if side == chess.Blue {
		return BlueTurnLabel
	}
	return PinkTurnLabel
}

// WriteSave writes the side to move and every active piece, one per line
// in row-major order.
func WriteSave(w io.Writer, board *chess.Board, toMove chess.Side) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, TurnLabel(toMove))
	for _, p := range board.Pieces() {
		if !p.Active {
			continue
		}
		fmt.Fprintf(bw, "%s,%d,%d,%s\n", p.Kind, p.Row, p.Col, p.Side.Code())
	}
	return bw.Flush()
}

// ReadSave parses a save file. Unusable piece lines are skipped and
// reported in SavedGame.Skipped. A bad header returns ErrInvalidSave. A
// position without exactly one Sau per side returns ErrMissingSau together
// with the partially read game.
func ReadSave(r io.Reader, name string) (*SavedGame, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		return nil, fmt.Errorf("%s: empty file: %w", name, errors.ErrInvalidSave)
	}
	toMove, err := parseTurnLabel(scanner.Text())
	if err != nil {
		return nil, &errors.ParseError{Err: err, File: name, Line: 1, Text: scanner.Text()}
	}

	saved := &SavedGame{Board: chess.NewBoard(), ToMove: toMove}
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := placeRecord(saved.Board, line, toMove); err != nil {
			saved.Skipped = append(saved.Skipped, &errors.ParseError{Err: err, File: name, Line: lineNum, Text: line})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}

	for _, side := range chess.Sides {
		if n := saved.Board.Count(chess.Sau, side); n != 1 {
			return saved, fmt.Errorf("%s: %s has %d Sau: %w", name, side, n, errors.ErrMissingSau)
		}
	}
	return saved, nil
}

// parseTurnLabel reads the header line.
func parseTurnLabel(line string) (chess.Side, error) {
	line = strings.TrimSpace(line)
	switch {
	case strings.EqualFold(line, PinkTurnLabel):
		return chess.Pink, nil
	case strings.EqualFold(line, BlueTurnLabel):
		return chess.Blue, nil
	}
	return chess.Pink, fmt.Errorf("unknown turn header: %w", errors.ErrInvalidSave)
}

// placeRecord parses one "<kind>,<row>,<col>,<side>" line onto board.
// Coordinates are as toMove sees the board.
func placeRecord(board *chess.Board, line string, toMove chess.Side) error {
	parts := strings.Split(line, ",")
	if len(parts) != saveFields {
		return fmt.Errorf("invalid line format: %w", errors.ErrInvalidSave)
	}

	row, rowErr := strconv.Atoi(strings.TrimSpace(parts[1]))
	col, colErr := strconv.Atoi(strings.TrimSpace(parts[2]))
	if rowErr != nil || colErr != nil || !chess.InBounds(row, col) {
		return fmt.Errorf("invalid coordinates: %w", errors.ErrInvalidSave)
	}

	side, ok := chess.ParseSide(parts[3])
	if !ok {
		return fmt.Errorf("invalid color: %w", errors.ErrInvalidSave)
	}
	kind, ok := chess.ParseKind(parts[0])
	if !ok {
		return fmt.Errorf("unrecognized piece: %w", errors.ErrInvalidSave)
	}
	if !board.IsEmpty(row, col) {
		return fmt.Errorf("cell already occupied: %w", errors.ErrInvalidSave)
	}

	p := chess.NewPiece(kind, side, row, col)
	if kind == chess.Ram {
		p.Reversed = onFarEdge(side, toMove, row)
	}
	board.Place(p)
	return nil
}

// onFarEdge reports whether a Ram of side on row is on the edge it
// advances toward. A Ram there has already turned back. The side on move
// advances toward row 0; the board is flipped for the other side, whose
// far edge is LastRow.
func onFarEdge(side, toMove chess.Side, row int) bool {
	if side == toMove {
		return row == 0
	}
	return row == chess.LastRow
}

// Save writes the game to path. The file is written to a temporary name in
// the same directory and renamed into place.
func (g *Game) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	if err := WriteSave(tmp, g.board, g.toMove); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	g.cfg.Logf(config.Commentary, "Game saved to %s", path)
	return nil
}

// Load replaces the game with the one stored at path. On I/O errors or a
// bad header the current game is kept. A file without exactly one Sau per
// side is discarded and the game restarts from the standard position; the
// returned error wraps ErrMissingSau in that case.
func (g *Game) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		g.cfg.Logf(config.Warnings, "Error loading the game: %v", err)
		return errors.Wrap(err, "loading game")
	}
	defer f.Close()

	saved, err := ReadSave(f, path)
	if saved != nil {
		for _, skipped := range saved.Skipped {
			g.cfg.Logf(config.Warnings, "%v", skipped)
		}
	}
	if errors.Is(err, errors.ErrMissingSau) {
		g.cfg.Logf(config.Warnings, "Game file invalid: %v", err)
		g.ResetGame()
		return err
	}
	if err != nil {
		g.cfg.Logf(config.Warnings, "Error loading the game: %v", err)
		return err
	}

	g.LoadPosition(saved.Board, saved.ToMove)
	g.cfg.Logf(config.Commentary, "Game loaded successfully from %s", path)
	return nil
}
