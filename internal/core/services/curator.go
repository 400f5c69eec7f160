package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

// Curator coordinates catalog search and playlist creation around a
// validated playlist specification.
type Curator struct {
	catalog ports.CatalogProvider
	repo    ports.PlaylistRepository
}

// NewCurator constructs a Curator.
func NewCurator(catalog ports.CatalogProvider, repo ports.PlaylistRepository) *Curator {
	return &Curator{
		catalog: catalog,
		repo:    repo,
	}
}

// SearchTracks resolves a spec into matching catalog tracks. Specs with an
// unknown schema version are rejected before any catalog call.
func (c *Curator) SearchTracks(ctx context.Context, spec domain.PlaylistSpec, limit int) ([]domain.Track, error) {
	if spec.Version != domain.SchemaVersion {
		return nil, fmt.Errorf("service: spec version %q: %w", spec.Version, ports.ErrUnsupportedSpecVersion)
	}
	if limit <= 0 {
		limit = 20
	}

	tracks, err := c.catalog.SearchTracks(ctx, spec, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search tracks: %w", err)
	}
	return tracks, nil
}

// CreatePlaylist creates the playlist remotely, assembles the domain
// playlist with duplicate protection, and persists it locally so the
// preview analyzer can enrich it later.
func (c *Curator) CreatePlaylist(ctx context.Context, name, description string, public bool, tracks []domain.Track) (domain.Playlist, error) {
	if name == "" {
		return domain.Playlist{}, errors.New("service: playlist name cannot be empty")
	}

	trackIDs := make([]string, 0, len(tracks))
	for _, t := range tracks {
		if t.ID != "" {
			trackIDs = append(trackIDs, t.ID)
		}
	}

	created, err := c.catalog.CreatePlaylist(ctx, name, description, public, trackIDs)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("service: failed to create playlist: %w", err)
	}

	pl, err := domain.NewPlaylist(created.ID, created.Name)
	if err != nil {
		return domain.Playlist{}, fmt.Errorf("service: invalid playlist from catalog: %w", err)
	}
	pl.URL = created.URL
	for _, t := range tracks {
		if err := pl.AddTrack(t); err != nil {
			if errors.Is(err, domain.ErrDuplicateTrack) {
				continue
			}
			return domain.Playlist{}, fmt.Errorf("service: domain rule violation: %w", err)
		}
	}

	if err := c.repo.Save(ctx, *pl); err != nil {
		return domain.Playlist{}, fmt.Errorf("service: failed to save playlist: %w", err)
	}

	return *pl, nil
}
