// Package results keeps a persistent tally of finished Kwazam games.
package results

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/kwazam-go/internal/chess"
	"github.com/lgbarn/kwazam-go/internal/errors"
)

const keyTally = "tally"

// Tally counts finished games.
type Tally struct {
	GamesPlayed int       `json:"games_played"`
	PinkWins    int       `json:"pink_wins"`
	BlueWins    int       `json:"blue_wins"`
	LastWinner  string    `json:"last_winner,omitempty"`
	LastPlayed  time.Time `json:"last_played,omitempty"`
}

// Wins returns the number of games won by side.
func (t *Tally) Wins(side chess.Side) int {
	if side == chess.Blue {
		return t.BlueWins
	}
	return t.PinkWins
}

// String formats the tally for the stats command.
func (t *Tally) String() string {
	s := fmt.Sprintf("games played: %d, Pink wins: %d, Blue wins: %d", t.GamesPlayed, t.PinkWins, t.BlueWins)
	if t.LastWinner != "" {
		s += fmt.Sprintf(", last winner: %s", t.LastWinner)
	}
	return s
}

// Store wraps BadgerDB for the results tally.
type Store struct {
	db *badger.DB
}

// Open opens the results database in dir. An empty dir selects DefaultDir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			return nil, errors.Wrap(err, "results directory")
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening results store %s", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that is discarded on Close.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening in-memory results store")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the stored tally, or an empty one if none was recorded.
func (s *Store) Load() (*Tally, error) {
	tally := &Tally{}
	err := s.db.View(func(txn *badger.Txn) error {
		return readTally(txn, tally)
	})
	return tally, err
}

// RecordWin adds a game won by side and returns the updated tally.
func (s *Store) RecordWin(side chess.Side) (*Tally, error) {
	tally := &Tally{}
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := readTally(txn, tally); err != nil {
			return err
		}
		tally.GamesPlayed++
		if side == chess.Blue {
			tally.BlueWins++
		} else {
			tally.PinkWins++
		}
		tally.LastWinner = side.String()
		tally.LastPlayed = time.Now()

		data, err := json.Marshal(tally)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyTally), data)
	})
	if err != nil {
		return nil, errors.Wrap(err, "recording result")
	}
	return tally, nil
}

// Reset removes the stored tally.
func (s *Store) Reset() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyTally))
	})
}

func readTally(txn *badger.Txn, tally *Tally) error {
	item, err := txn.Get([]byte(keyTally))
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, tally)
	})
}
