package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/meur/gamecollection/internal/models"
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
		`CREATE TABLE IF NOT EXISTS imports (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			game_count INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			player_count TEXT NOT NULL,
			platform TEXT NOT NULL,
			cover_url TEXT,
			import_id TEXT NOT NULL REFERENCES imports(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_games_position ON games(position)`,
		`CREATE INDEX IF NOT EXISTS idx_imports_created ON imports(created_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// --- Games ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (models.Game, error) {
	var g models.Game
	var playerCount, platform string
	var coverURL sql.NullString
	if err := row.Scan(&g.ID, &g.Name, &playerCount, &platform, &coverURL); err != nil {
		return g, err
	}
	if err := json.Unmarshal([]byte(playerCount), &g.PlayerCount); err != nil {
		return g, fmt.Errorf("game %d: %w", g.ID, err)
	}
	g.Platform = models.Platform(platform)
	g.CoverURL = coverURL.String
	return g, nil
}

// GetGames returns all games in dataset order
func (s *Store) GetGames() ([]models.Game, error) {
	rows, err := s.db.Query(`
		SELECT id, name, player_count, platform, cover_url
		FROM games ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []models.Game{}
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}

// GetGame returns a game by ID, or nil when there is none
func (s *Store) GetGame(id int) (*models.Game, error) {
	g, err := scanGame(s.db.QueryRow(`
		SELECT id, name, player_count, platform, cover_url
		FROM games WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// ReplaceGames swaps the whole game list for games in one transaction and records the import
func (s *Store) ReplaceGames(source string, games []models.Game) (*models.Import, error) {
	imp := &models.Import{
		ID:        uuid.New().String(),
		Source:    source,
		GameCount: len(games),
		CreatedAt: time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO imports (id, source, game_count, created_at) VALUES (?, ?, ?, ?)
	`, imp.ID, imp.Source, imp.GameCount, imp.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to record import: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM games`); err != nil {
		return nil, fmt.Errorf("failed to clear games: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO games (id, position, name, player_count, platform, cover_url, import_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, g := range games {
		playerCount, err := json.Marshal(g.PlayerCount)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", g.ID, err)
		}
		if _, err := stmt.Exec(g.ID, i, g.Name, string(playerCount), string(g.Platform), g.CoverURL, imp.ID); err != nil {
			return nil, fmt.Errorf("failed to insert game %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return imp, nil
}

// UpdateCover sets the cover asset of a game and reports whether the game exists
func (s *Store) UpdateCover(id int, coverURL string) (bool, error) {
	res, err := s.db.Exec(`UPDATE games SET cover_url = ? WHERE id = ?`, coverURL, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// --- Imports ---

// LatestImport returns the most recent import, or nil when the database was never seeded
func (s *Store) LatestImport() (*models.Import, error) {
	var imp models.Import
	err := s.db.QueryRow(`
		SELECT id, source, game_count, created_at
		FROM imports ORDER BY created_at DESC, rowid DESC LIMIT 1
	`).Scan(&imp.ID, &imp.Source, &imp.GameCount, &imp.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}
