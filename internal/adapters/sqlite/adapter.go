// Package sqlite provides a SQLite-backed implementation of the playlist
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // driver registration

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

// Adapter implements the repository port for SQLite.
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.PlaylistRepository = (*Adapter)(nil)

// NewAdapter opens the database and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close releases the database connection.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS playlists (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		url  TEXT
	);
	CREATE TABLE IF NOT EXISTS tracks (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		artist      TEXT NOT NULL,
		album       TEXT,
		uri         TEXT,
		preview_url TEXT,
		explicit    INTEGER NOT NULL DEFAULT 0,
		popularity  INTEGER NOT NULL DEFAULT 0,
		energy      REAL NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS playlist_tracks (
		playlist_id TEXT NOT NULL REFERENCES playlists(id),
		track_id    TEXT NOT NULL REFERENCES tracks(id),
		position    INTEGER NOT NULL,
		PRIMARY KEY (playlist_id, track_id)
	);
	`
	_, err := a.db.Exec(schema)
	return err
}

// GetByID loads a playlist with its tracks in stored order.
func (a *Adapter) GetByID(ctx context.Context, id string) (domain.Playlist, error) {
	row := a.db.QueryRowContext(ctx, "SELECT id, name, IFNULL(url, '') FROM playlists WHERE id = ?", id)
	var playlist domain.Playlist
	if err := row.Scan(&playlist.ID, &playlist.Name, &playlist.URL); err != nil {
		if err == sql.ErrNoRows {
			return domain.Playlist{}, domain.ErrNotFound
		}
		return domain.Playlist{}, fmt.Errorf("failed to load playlist: %w", err)
	}
	playlist.Tracks = []domain.Track{}

	trackRows, err := a.db.QueryContext(ctx, `
		SELECT t.id, t.title, t.artist, IFNULL(t.album, ''), IFNULL(t.uri, ''),
			IFNULL(t.preview_url, ''), t.explicit, t.popularity, t.energy
		FROM tracks t
		JOIN playlist_tracks pt ON pt.track_id = t.id
		WHERE pt.playlist_id = ?
		ORDER BY pt.position ASC
	`, playlist.ID)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to load playlist tracks: %w", err)
	}
	defer trackRows.Close()

	for trackRows.Next() {
		var track domain.Track
		if err := trackRows.Scan(
			&track.ID,
			&track.Title,
			&track.Artist,
			&track.Album,
			&track.URI,
			&track.PreviewURL,
			&track.Explicit,
			&track.Popularity,
			&track.Energy,
		); err != nil {
			return domain.Playlist{}, fmt.Errorf("failed to scan playlist track: %w", err)
		}
		playlist.Tracks = append(playlist.Tracks, track)
	}
	if err := trackRows.Err(); err != nil {
		return domain.Playlist{}, fmt.Errorf("failed to iterate playlist tracks: %w", err)
	}

	return playlist, nil
}

// Save upserts the playlist and its tracks and rebuilds the link rows.
func (a *Adapter) Save(ctx context.Context, p domain.Playlist) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	queryPlaylist := `
		INSERT INTO playlists (id, name, url) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name=excluded.name, url=excluded.url;
	`
	if _, err := tx.ExecContext(ctx, queryPlaylist, p.ID, p.Name, p.URL); err != nil {
		return fmt.Errorf("failed to save playlist metadata: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM playlist_tracks WHERE playlist_id = ?", p.ID); err != nil {
		return fmt.Errorf("failed to clear old tracks: %w", err)
	}

	stmtTrack, err := tx.PrepareContext(ctx, `
		INSERT INTO tracks (id, title, artist, album, uri, preview_url, explicit, popularity, energy)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			artist=excluded.artist,
			album=excluded.album,
			uri=excluded.uri,
			preview_url=excluded.preview_url,
			explicit=excluded.explicit,
			popularity=excluded.popularity;
	`)
	if err != nil {
		return err
	}
	defer stmtTrack.Close()

	stmtLink, err := tx.PrepareContext(ctx, `
		INSERT INTO playlist_tracks (playlist_id, track_id, position)
		VALUES (?, ?, ?)
		ON CONFLICT(playlist_id, track_id) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmtLink.Close()

	for i, t := range p.Tracks {
		if _, err := stmtTrack.ExecContext(
			ctx,
			t.ID,
			t.Title,
			t.Artist,
			t.Album,
			t.URI,
			t.PreviewURL,
			t.Explicit,
			t.Popularity,
			t.Energy,
		); err != nil {
			return fmt.Errorf("failed to save track %s: %w", t.ID, err)
		}
		if _, err := stmtLink.ExecContext(ctx, p.ID, t.ID, i); err != nil {
			return fmt.Errorf("failed to link track %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateTrackEnergy stores the preview-measured energy for a track.
func (a *Adapter) UpdateTrackEnergy(ctx context.Context, trackID string, energy float64) error {
	if _, err := a.db.ExecContext(ctx, "UPDATE tracks SET energy = ? WHERE id = ?", energy, trackID); err != nil {
		return fmt.Errorf("failed to update track energy: %w", err)
	}
	return nil
}
