package domain

import "errors"

var (
	ErrNotFound       = errors.New("domain: not found")
	ErrDuplicateTrack = errors.New("domain: duplicate track")
)

// Playlist is a created playlist together with the tracks it holds.
type Playlist struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	URL    string  `json:"url,omitempty"`
	Tracks []Track `json:"tracks"`
}

func NewPlaylist(id, name string) (*Playlist, error) {
	if id == "" || name == "" {
		return nil, errors.New("domain: invalid argument")
	}
	return &Playlist{
		ID:     id,
		Name:   name,
		Tracks: []Track{},
	}, nil
}

// AddTrack appends a track while preventing duplicate catalog IDs. If the
// incoming track's ID already exists in the playlist, AddTrack returns
// ErrDuplicateTrack.
func (p *Playlist) AddTrack(t Track) error {
	if t.ID != "" {
		for _, ex := range p.Tracks {
			if ex.ID == t.ID {
				return ErrDuplicateTrack
			}
		}
	}
	p.Tracks = append(p.Tracks, t)
	return nil
}

// CreatedPlaylist is the catalog's answer after a playlist is created
// remotely, before any local persistence.
type CreatedPlaylist struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Name       string `json:"name"`
	TrackCount int    `json:"track_count"`
}
