package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/duelforge/internal/models"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate runs database migrations
func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			deck_name TEXT NOT NULL,
			deck_archtype TEXT,
			tournament TEXT,
			date TEXT,
			placement TEXT,
			player TEXT,
			main_cards TEXT NOT NULL,
			extra_cards TEXT NOT NULL,
			side_cards TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decks_date ON decks(date)`,
		`CREATE TABLE IF NOT EXISTS banlists (
			id TEXT PRIMARY KEY,
			format TEXT NOT NULL,
			banlist_name TEXT NOT NULL,
			banlist_date TEXT NOT NULL,
			banned_cards TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_banlists_format ON banlists(format, banlist_date)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Decks ---

const deckColumns = `id, deck_name, deck_archtype, tournament, date, placement, player,
	main_cards, extra_cards, side_cards`

const upsertDeck = `INSERT OR REPLACE INTO decks (` + deckColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

type scanner interface {
	Scan(dest ...any) error
}

func scanDeck(row scanner) (models.Deck, error) {
	var d models.Deck
	var main, extra, side string
	err := row.Scan(&d.ID, &d.Name, &d.Archetype, &d.Tournament, &d.Date,
		&d.Placement, &d.Player, &main, &extra, &side)
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal([]byte(main), &d.MainCards); err != nil {
		return d, fmt.Errorf("deck %s main cards: %w", d.ID, err)
	}
	if err := json.Unmarshal([]byte(extra), &d.ExtraCards); err != nil {
		return d, fmt.Errorf("deck %s extra cards: %w", d.ID, err)
	}
	if err := json.Unmarshal([]byte(side), &d.SideCards); err != nil {
		return d, fmt.Errorf("deck %s side cards: %w", d.ID, err)
	}
	return d, nil
}

func deckArgs(d *models.Deck) []any {
	return []any{d.ID, d.Name, d.Archetype, d.Tournament, d.Date, d.Placement, d.Player,
		jsonList(d.MainCards), jsonList(d.ExtraCards), jsonList(d.SideCards)}
}

// jsonList encodes a card list, writing [] for nil.
func jsonList[T any](list []T) string {
	if list == nil {
		return "[]"
	}
	b, _ := json.Marshal(list)
	return string(b)
}

// CreateDeck inserts or replaces a deck. An empty ID gets a fresh UUID.
func (s *Store) CreateDeck(d *models.Deck) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if _, err := s.db.Exec(upsertDeck, deckArgs(d)...); err != nil {
		return fmt.Errorf("create deck %s: %w", d.ID, err)
	}
	return nil
}

// BulkCreateDecks creates multiple decks in a transaction
func (s *Store) BulkCreateDecks(decks []models.Deck) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertDeck)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range decks {
		if decks[i].ID == "" {
			decks[i].ID = uuid.New().String()
		}
		if _, err := stmt.Exec(deckArgs(&decks[i])...); err != nil {
			return fmt.Errorf("create deck %s: %w", decks[i].ID, err)
		}
	}

	return tx.Commit()
}

// GetDecks returns every deck, newest tournament first
func (s *Store) GetDecks() ([]models.Deck, error) {
	rows, err := s.db.Query(`SELECT ` + deckColumns + ` FROM decks ORDER BY date DESC, deck_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decks := []models.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// GetDeck returns a deck by ID, or nil when it does not exist
func (s *Store) GetDeck(id string) (*models.Deck, error) {
	d, err := scanDeck(s.db.QueryRow(`SELECT `+deckColumns+` FROM decks WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDecksByCard returns the decks holding a card whose name contains
// cardName, ignoring case.
func (s *Store) GetDecksByCard(cardName string) ([]models.Deck, error) {
	decks, err := s.GetDecks()
	if err != nil {
		return nil, err
	}
	matching := []models.Deck{}
	for _, d := range decks {
		if d.Contains(cardName) {
			matching = append(matching, d)
		}
	}
	return matching, nil
}

// --- Banlists ---

const upsertBanlist = `INSERT OR REPLACE INTO banlists (id, format, banlist_name, banlist_date, banned_cards)
	VALUES (?, ?, ?, ?, ?)`

// CreateBanlist inserts or replaces a banlist. An empty ID gets a fresh UUID.
func (s *Store) CreateBanlist(b *models.Banlist) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	_, err := s.db.Exec(upsertBanlist, b.ID, string(b.Format), b.Name, b.Date, jsonList(b.Cards))
	if err != nil {
		return fmt.Errorf("create banlist %s: %w", b.ID, err)
	}
	return nil
}

// BulkCreateBanlists creates multiple banlists in a transaction
func (s *Store) BulkCreateBanlists(lists []models.Banlist) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertBanlist)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := range lists {
		b := &lists[i]
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if _, err := stmt.Exec(b.ID, string(b.Format), b.Name, b.Date, jsonList(b.Cards)); err != nil {
			return fmt.Errorf("create banlist %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// GetBanlists returns banlists newest first. An empty format returns all of them.
func (s *Store) GetBanlists(format models.Format) ([]models.Banlist, error) {
	var rows *sql.Rows
	var err error

	if format != "" {
		rows, err = s.db.Query(`
			SELECT id, format, banlist_name, banlist_date, banned_cards
			FROM banlists WHERE format = ? ORDER BY banlist_date DESC
		`, string(format))
	} else {
		rows, err = s.db.Query(`
			SELECT id, format, banlist_name, banlist_date, banned_cards
			FROM banlists ORDER BY banlist_date DESC
		`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lists := []models.Banlist{}
	for rows.Next() {
		var b models.Banlist
		var format, cards string
		if err := rows.Scan(&b.ID, &format, &b.Name, &b.Date, &cards); err != nil {
			return nil, err
		}
		b.Format = models.Format(format)
		if err := json.Unmarshal([]byte(cards), &b.Cards); err != nil {
			return nil, fmt.Errorf("banlist %s cards: %w", b.ID, err)
		}
		lists = append(lists, b)
	}
	return lists, rows.Err()
}
