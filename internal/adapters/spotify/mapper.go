package spotify

import (
	"strings"

	"github.com/zmb3/spotify/v2"

	"github.com/vibechef/vibechef/internal/core/domain"
)

// simpleTrackToDomain maps a recommendation result to a domain track.
// Popularity is not part of the simplified track object and stays zero.
func simpleTrackToDomain(st spotify.SimpleTrack) domain.Track {
	return domain.Track{
		ID:         st.ID.String(),
		Title:      st.Name,
		Artist:     joinArtists(st.Artists),
		Album:      st.Album.Name,
		URI:        string(st.URI),
		Explicit:   st.Explicit,
		PreviewURL: st.PreviewURL,
	}
}

// fullTrackToDomain maps a search result, which does carry popularity.
func fullTrackToDomain(ft spotify.FullTrack) domain.Track {
	t := simpleTrackToDomain(ft.SimpleTrack)
	t.Album = ft.Album.Name
	t.Popularity = int(ft.Popularity)
	return t
}

func joinArtists(artists []spotify.SimpleArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
