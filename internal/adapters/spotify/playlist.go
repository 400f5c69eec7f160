package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/vibechef/vibechef/internal/core/domain"
)

// maxTracksPerRequest is the Spotify API limit for one add-tracks call.
const maxTracksPerRequest = 100

// CreatePlaylist creates a playlist on the current user's account and adds
// the given tracks in batches of at most 100.
func (c *Client) CreatePlaylist(ctx context.Context, name, description string, public bool, trackIDs []string) (domain.CreatedPlaylist, error) {
	user, err := c.api.CurrentUser(ctx)
	if err != nil {
		return domain.CreatedPlaylist{}, fmt.Errorf("spotify adapter: current user: %w", err)
	}

	playlist, err := c.api.CreatePlaylistForUser(ctx, user.ID, name, description, public, false)
	if err != nil {
		return domain.CreatedPlaylist{}, fmt.Errorf("spotify adapter: create playlist: %w", err)
	}

	ids := make([]spotify.ID, len(trackIDs))
	for i, id := range trackIDs {
		ids[i] = spotify.ID(id)
	}

	for i := 0; i < len(ids); i += maxTracksPerRequest {
		end := min(i+maxTracksPerRequest, len(ids))
		if _, err := c.api.AddTracksToPlaylist(ctx, playlist.ID, ids[i:end]...); err != nil {
			return domain.CreatedPlaylist{}, fmt.Errorf("spotify adapter: add tracks (batch %d-%d): %w", i+1, end, err)
		}
	}

	return domain.CreatedPlaylist{
		ID:         playlist.ID.String(),
		URL:        playlist.ExternalURLs["spotify"],
		Name:       playlist.Name,
		TrackCount: len(trackIDs),
	}, nil
}
