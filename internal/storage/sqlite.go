// Package storage provides SQLite-based persistence for generated levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-dungeon/internal/level"
)

// Store manages the SQLite database connection for the level catalog.
type Store struct {
	db *sql.DB
}

// LevelRecord is one generated level as kept in the catalog.
type LevelRecord struct {
	ID           int64
	Seed         uint64
	Architect    string
	Theme        string
	Width        int
	Height       int
	Rooms        int
	Monsters     int
	GoalDistance float64
	Reachable    int
	Prefab       string // Empty if no prefab was stamped
	Attempts     int
	Source       string // "cli" or the SSH user name
	Layout       string // Themed rows joined with newlines
	CreatedAt    time.Time
}

// Rows splits the stored layout back into rows.
func (r LevelRecord) Rows() []string {
	if r.Layout == "" {
		return nil
	}
	return strings.Split(r.Layout, "\n")
}

// RecordFromResult builds a catalog record for a generated level.
func RecordFromResult(res *level.Result, source string) LevelRecord {
	rec := LevelRecord{
		Seed:         res.Seed(),
		Architect:    res.Architect().String(),
		Theme:        res.Theme().Name(),
		Width:        res.Width(),
		Height:       res.Height(),
		Rooms:        len(res.Rooms()),
		Monsters:     len(res.MonsterSpawns()),
		GoalDistance: res.GoalDistance(),
		Reachable:    res.ReachableTiles(),
		Attempts:     res.Attempts(),
		Source:       source,
		Layout:       strings.Join(res.Symbols(), "\n"),
	}
	if pp := res.Prefab(); pp != nil {
		rec.Prefab = pp.Name
	}
	return rec
}

// ArchitectStats contains aggregated statistics for one architect.
type ArchitectStats struct {
	Architect       string
	Levels          int
	AvgRooms        float64
	AvgMonsters     float64
	AvgGoalDistance float64
	MaxGoalDistance float64
	LastGenerated   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			architect TEXT NOT NULL,
			theme TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			rooms INTEGER NOT NULL DEFAULT 0,
			monsters INTEGER NOT NULL DEFAULT 0,
			goal_distance REAL NOT NULL DEFAULT 0,
			reachable INTEGER NOT NULL DEFAULT 0,
			prefab TEXT,
			attempts INTEGER NOT NULL DEFAULT 1,
			source TEXT NOT NULL DEFAULT 'cli',
			layout TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_seed ON levels(seed);
		CREATE INDEX IF NOT EXISTS idx_levels_architect ON levels(architect);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel records a generated level.
// Returns the ID of the inserted record.
func (s *Store) SaveLevel(rec LevelRecord) (int64, error) {
	var prefab sql.NullString
	if rec.Prefab != "" {
		prefab = sql.NullString{String: rec.Prefab, Valid: true}
	}
	source := rec.Source
	if source == "" {
		source = "cli"
	}

	// Seeds use the full uint64 range; SQLite integers are signed.
	result, err := s.db.Exec(
		`INSERT INTO levels
		 (seed, architect, theme, width, height, rooms, monsters, goal_distance, reachable, prefab, attempts, source, layout)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(rec.Seed),
		rec.Architect,
		rec.Theme,
		rec.Width,
		rec.Height,
		rec.Rooms,
		rec.Monsters,
		rec.GoalDistance,
		rec.Reachable,
		prefab,
		rec.Attempts,
		source,
		rec.Layout,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const levelColumns = `id, seed, architect, theme, width, height, rooms, monsters,
	goal_distance, reachable, prefab, attempts, source, layout, created_at`

// LevelByID retrieves a level by its catalog ID.
// Returns nil without error when no such level exists.
func (s *Store) LevelByID(id int64) (*LevelRecord, error) {
	row := s.db.QueryRow(
		`SELECT `+levelColumns+` FROM levels WHERE id = ?`,
		id,
	)
	rec, err := scanLevel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level: %w", err)
	}
	return &rec, nil
}

// RecentLevels retrieves the most recently generated levels.
func (s *Store) RecentLevels(limit int) ([]LevelRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+levelColumns+`
		 FROM levels
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	return collectLevels(rows)
}

// LevelsBySeed retrieves every level generated from the given seed,
// oldest first.
func (s *Store) LevelsBySeed(seed uint64) ([]LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+levelColumns+`
		 FROM levels
		 WHERE seed = ?
		 ORDER BY id`,
		int64(seed),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels by seed: %w", err)
	}
	return collectLevels(rows)
}

// ClearLevels deletes the whole catalog.
func (s *Store) ClearLevels() error {
	_, err := s.db.Exec("DELETE FROM levels")
	if err != nil {
		return fmt.Errorf("storage: cannot clear levels: %w", err)
	}
	return nil
}

// ArchitectStats retrieves statistics for every architect in the catalog.
func (s *Store) ArchitectStats() (map[string]*ArchitectStats, error) {
	rows, err := s.db.Query(
		`SELECT architect, COUNT(*), AVG(rooms), AVG(monsters), AVG(goal_distance),
		        MAX(goal_distance), MAX(created_at)
		 FROM levels
		 GROUP BY architect`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get architect stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ArchitectStats)
	for rows.Next() {
		var st ArchitectStats
		var lastGenerated any
		if err := rows.Scan(&st.Architect, &st.Levels, &st.AvgRooms, &st.AvgMonsters,
			&st.AvgGoalDistance, &st.MaxGoalDistance, &lastGenerated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastGenerated = parseTimestamp(lastGenerated)
		stats[st.Architect] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLevel(sc scanner) (LevelRecord, error) {
	var rec LevelRecord
	var seed int64
	var prefab sql.NullString
	var createdAt any

	err := sc.Scan(
		&rec.ID,
		&seed,
		&rec.Architect,
		&rec.Theme,
		&rec.Width,
		&rec.Height,
		&rec.Rooms,
		&rec.Monsters,
		&rec.GoalDistance,
		&rec.Reachable,
		&prefab,
		&rec.Attempts,
		&rec.Source,
		&rec.Layout,
		&createdAt,
	)
	if err != nil {
		return LevelRecord{}, err
	}

	rec.Seed = uint64(seed)
	if prefab.Valid {
		rec.Prefab = prefab.String
	}
	rec.CreatedAt = parseTimestamp(createdAt)
	return rec, nil
}

func collectLevels(rows *sql.Rows) ([]LevelRecord, error) {
	defer rows.Close()

	var records []LevelRecord
	for rows.Next() {
		rec, err := scanLevel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
