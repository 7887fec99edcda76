// Package store provides persistent storage for games, keyed by id. A
// record holds everything needed to reconstruct game truth — the initial
// FEN and the coordinate move list — plus the PGN and result for display;
// loading replays the moves through the engine rather than trusting any
// serialized position.
package store

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/castlebay/chesskit/internal/chess"
	"github.com/castlebay/chesskit/internal/errors"
	"github.com/castlebay/chesskit/internal/game"
)

const gameKeyPrefix = "game:"

// SavedMove is one move of a stored game in coordinate notation.
type SavedMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// SavedGame is the stored form of a game.
type SavedGame struct {
	ID         string      `json:"id"`
	InitialFEN string      `json:"initial_fen"`
	Moves      []SavedMove `json:"moves"`
	PGN        string      `json:"pgn"`
	Result     string      `json:"result"`
	SavedAt    time.Time   `json:"saved_at"`
}

// Store wraps BadgerDB for persistent game storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenDefault opens the store in the platform data directory.
func OpenDefault() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dir)
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveGame stores the game under the given id, overwriting any previous
// record with that id.
func (s *Store) SaveGame(id string, g *game.Game) error {
	record := SavedGame{
		ID:         id,
		InitialFEN: g.InitialFEN(),
		PGN:        g.PGN(),
		Result:     g.Result().String(),
		SavedAt:    time.Now(),
	}
	for _, m := range g.History() {
		sm := SavedMove{From: m.From.String(), To: m.To.String()}
		if m.Promotion != chess.NoPiece {
			sm.Promotion = strings.ToLower(string(m.Promotion.Letter()))
		}
		record.Moves = append(record.Moves, sm)
	}

	data, err := json.Marshal(&record)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+id), data)
	})
}

// LoadGame reconstructs the game stored under the given id by replaying
// its move list from its initial position. A missing id yields
// ErrGameNotFound; a record whose moves no longer replay yields
// ErrCorruptSave.
func (s *Store) LoadGame(id string) (*game.Game, error) {
	var record SavedGame
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + id))
		if err == badger.ErrKeyNotFound {
			return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}

	g, err := game.NewFromFEN(record.InitialFEN)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorruptSave, "id %q: %v", id, err)
	}
	for i, sm := range record.Moves {
		promotion, ok := parsePromotion(sm.Promotion)
		if !ok || g.Move(sm.From, sm.To, promotion) == nil {
			return nil, errors.Wrapf(errors.ErrCorruptSave, "id %q: move %d (%s%s) does not replay", id, i+1, sm.From, sm.To)
		}
	}
	return g, nil
}

// DeleteGame removes the record stored under the given id.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(gameKeyPrefix + id))
	})
}

// ListGames returns the stored records, without replaying them.
func (s *Store) ListGames() ([]SavedGame, error) {
	var records []SavedGame
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(gameKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var record SavedGame
				if err := json.Unmarshal(val, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// parsePromotion converts a stored promotion letter to a piece kind.
// The empty string means no promotion.
func parsePromotion(s string) (chess.PieceKind, bool) {
	switch s {
	case "":
		return chess.NoPiece, true
	case "q":
		return chess.Queen, true
	case "r":
		return chess.Rook, true
	case "b":
		return chess.Bishop, true
	case "n":
		return chess.Knight, true
	default:
		return chess.NoPiece, false
	}
}
