// Package sqlite provides a SQLite-backed implementation of the history
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/soundcheck-labs/vibecraft/internal/core/domain"
	"github.com/soundcheck-labs/vibecraft/internal/core/ports"
)

// Adapter stores playlist creation records in a local SQLite file.
type Adapter struct {
	db *sql.DB
}

var _ ports.HistoryRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	// Auto-migrate on startup for local dev
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) SaveRecord(ctx context.Context, rec domain.PlaylistRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO playlist_history (
			id, playlist_id, url, name, vibe,
			energy, valence, danceability, tempo_min, tempo_max, genres,
			track_count, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := a.db.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.PlaylistID,
		rec.URL,
		rec.Name,
		rec.Vibe,
		rec.Profile.Energy,
		rec.Profile.Valence,
		rec.Profile.Danceability,
		rec.Profile.TempoMin,
		rec.Profile.TempoMax,
		strings.Join(rec.Profile.Genres, ","),
		rec.TrackCount,
		rec.CreatedAt,
	); err != nil {
		return fmt.Errorf("failed to save playlist record: %w", err)
	}

	return nil
}

func (a *Adapter) Recent(ctx context.Context, limit int) ([]domain.PlaylistRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := a.db.QueryContext(ctx, `
		SELECT id, playlist_id, url, name, vibe,
			energy, valence, danceability, tempo_min, tempo_max, genres,
			track_count, created_at
		FROM playlist_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load playlist history: %w", err)
	}
	defer rows.Close()

	records := []domain.PlaylistRecord{}
	for rows.Next() {
		var rec domain.PlaylistRecord
		var genres string
		if err := rows.Scan(
			&rec.ID,
			&rec.PlaylistID,
			&rec.URL,
			&rec.Name,
			&rec.Vibe,
			&rec.Profile.Energy,
			&rec.Profile.Valence,
			&rec.Profile.Danceability,
			&rec.Profile.TempoMin,
			&rec.Profile.TempoMax,
			&genres,
			&rec.TrackCount,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan playlist record: %w", err)
		}
		if genres != "" {
			rec.Profile.Genres = strings.Split(genres, ",")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playlist history: %w", err)
	}

	return records, nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS playlist_history (
		id TEXT PRIMARY KEY,
		playlist_id TEXT NOT NULL,
		url TEXT,
		name TEXT NOT NULL,
		vibe TEXT NOT NULL,
		energy REAL,
		valence REAL,
		danceability REAL,
		tempo_min INTEGER,
		tempo_max INTEGER,
		genres TEXT,
		track_count INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_playlist_history_created_at
		ON playlist_history(created_at);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}
