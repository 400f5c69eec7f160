package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

type mockCatalog struct {
	searchTracks  []domain.Track
	searchErr     error
	searchedLimit int

	created     domain.CreatedPlaylist
	createErr   error
	gotTrackIDs []string
}

func (m *mockCatalog) SearchTracks(_ context.Context, _ domain.PlaylistSpec, limit int) ([]domain.Track, error) {
	m.searchedLimit = limit
	return m.searchTracks, m.searchErr
}

func (m *mockCatalog) CreatePlaylist(_ context.Context, _, _ string, _ bool, trackIDs []string) (domain.CreatedPlaylist, error) {
	m.gotTrackIDs = trackIDs
	return m.created, m.createErr
}

type mockRepo struct {
	saved   *domain.Playlist
	saveErr error
}

func (m *mockRepo) GetByID(context.Context, string) (domain.Playlist, error) {
	return domain.Playlist{}, domain.ErrNotFound
}

func (m *mockRepo) Save(_ context.Context, p domain.Playlist) error {
	m.saved = &p
	return m.saveErr
}

func (m *mockRepo) UpdateTrackEnergy(context.Context, string, float64) error { return nil }

func TestCurator_SearchTracks(t *testing.T) {
	catalog := &mockCatalog{searchTracks: []domain.Track{{ID: "t1", Title: "Song"}}}
	c := NewCurator(catalog, &mockRepo{})

	spec := domain.PlaylistSpec{Version: domain.SchemaVersion}
	tracks, err := c.SearchTracks(context.Background(), spec, 0)
	if err != nil {
		t.Fatalf("SearchTracks() error = %v", err)
	}
	if len(tracks) != 1 || tracks[0].ID != "t1" {
		t.Fatalf("unexpected tracks: %+v", tracks)
	}
	if catalog.searchedLimit != 20 {
		t.Fatalf("zero limit must default to 20, got %d", catalog.searchedLimit)
	}
}

func TestCurator_SearchTracksRejectsUnknownVersion(t *testing.T) {
	c := NewCurator(&mockCatalog{}, &mockRepo{})

	_, err := c.SearchTracks(context.Background(), domain.PlaylistSpec{Version: "2.0.0"}, 10)
	if !errors.Is(err, ports.ErrUnsupportedSpecVersion) {
		t.Fatalf("error = %v, want ErrUnsupportedSpecVersion", err)
	}
}

func TestCurator_SearchTracksWrapsCatalogError(t *testing.T) {
	sentinel := errors.New("catalog down")
	c := NewCurator(&mockCatalog{searchErr: sentinel}, &mockRepo{})

	_, err := c.SearchTracks(context.Background(), domain.PlaylistSpec{Version: domain.SchemaVersion}, 5)
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want wrapped sentinel", err)
	}
}

func TestCurator_CreatePlaylist(t *testing.T) {
	catalog := &mockCatalog{created: domain.CreatedPlaylist{
		ID:   "pl1",
		URL:  "https://open.spotify.com/playlist/pl1",
		Name: "Focus",
	}}
	repo := &mockRepo{}
	c := NewCurator(catalog, repo)

	tracks := []domain.Track{
		{ID: "a", Title: "One"},
		{ID: "b", Title: "Two"},
		{ID: "a", Title: "One again"}, // duplicate, silently dropped
		{Title: "no id"},              // never sent to the catalog
	}
	pl, err := c.CreatePlaylist(context.Background(), "Focus", "desc", false, tracks)
	if err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if pl.ID != "pl1" || pl.URL != "https://open.spotify.com/playlist/pl1" {
		t.Fatalf("unexpected playlist: %+v", pl)
	}
	if got := len(pl.Tracks); got != 3 {
		t.Fatalf("track count = %d, want 3 (duplicate dropped)", got)
	}
	if len(catalog.gotTrackIDs) != 3 {
		t.Fatalf("catalog received %d IDs, want 3", len(catalog.gotTrackIDs))
	}
	if repo.saved == nil || repo.saved.ID != "pl1" {
		t.Fatal("playlist was not persisted")
	}
}

func TestCurator_CreatePlaylistEmptyName(t *testing.T) {
	c := NewCurator(&mockCatalog{}, &mockRepo{})

	if _, err := c.CreatePlaylist(context.Background(), "", "", false, nil); err == nil {
		t.Fatal("empty name must be rejected")
	}
}

func TestCurator_CreatePlaylistCatalogFailure(t *testing.T) {
	sentinel := errors.New("spotify unavailable")
	c := NewCurator(&mockCatalog{createErr: sentinel}, &mockRepo{})

	_, err := c.CreatePlaylist(context.Background(), "Focus", "", false, nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want wrapped sentinel", err)
	}
}

func TestCurator_CreatePlaylistSaveFailure(t *testing.T) {
	catalog := &mockCatalog{created: domain.CreatedPlaylist{ID: "pl1", Name: "Focus"}}
	sentinel := errors.New("disk full")
	c := NewCurator(catalog, &mockRepo{saveErr: sentinel})

	_, err := c.CreatePlaylist(context.Background(), "Focus", "", false, nil)
	if !errors.Is(err, sentinel) {
		t.Fatalf("error = %v, want wrapped sentinel", err)
	}
}
