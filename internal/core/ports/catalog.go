package ports

import (
	"context"
	"errors"

	"github.com/vibechef/vibechef/internal/core/domain"
)

// ErrUnsupportedSpecVersion indicates a playlist spec carried a schema
// version this catalog client does not understand.
var ErrUnsupportedSpecVersion = errors.New("unsupported spec version")

// CatalogProvider is the track-catalog boundary: it turns a playlist
// specification into concrete tracks and creates playlists remotely.
type CatalogProvider interface {
	SearchTracks(ctx context.Context, spec domain.PlaylistSpec, limit int) ([]domain.Track, error)
	CreatePlaylist(ctx context.Context, name, description string, public bool, trackIDs []string) (domain.CreatedPlaylist, error)
}
