package ports

import (
	"context"

	"github.com/vibechef/vibechef/internal/core/domain"
)

// PlaylistRepository persists created playlists locally so the preview
// analyzer can back-fill measured track energy after the fact.
type PlaylistRepository interface {
	GetByID(ctx context.Context, id string) (domain.Playlist, error)
	Save(ctx context.Context, p domain.Playlist) error
	UpdateTrackEnergy(ctx context.Context, trackID string, energy float64) error
}
