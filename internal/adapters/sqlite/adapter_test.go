package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vibechef/vibechef/internal/core/domain"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewAdapter() error = %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestGetByID_NotFound(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestSaveAndGetByID(t *testing.T) {
	a := newTestAdapter(t)

	p := domain.Playlist{
		ID:   "pl1",
		Name: "Focus",
		URL:  "https://open.spotify.com/playlist/pl1",
		Tracks: []domain.Track{
			{ID: "t1", Title: "First", Artist: "A", Album: "Alpha", URI: "spotify:track:t1", Popularity: 40},
			{ID: "t2", Title: "Second", Artist: "B", Explicit: true, PreviewURL: "https://cdn.example/t2.mp3"},
		},
	}
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := a.GetByID(context.Background(), "pl1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Focus" || got.URL != p.URL {
		t.Fatalf("unexpected playlist: %+v", got)
	}
	if len(got.Tracks) != 2 {
		t.Fatalf("track count = %d, want 2", len(got.Tracks))
	}
	// Stored order is preserved.
	if got.Tracks[0].ID != "t1" || got.Tracks[1].ID != "t2" {
		t.Fatalf("track order: %s, %s", got.Tracks[0].ID, got.Tracks[1].ID)
	}
	if !got.Tracks[1].Explicit || got.Tracks[1].PreviewURL != "https://cdn.example/t2.mp3" {
		t.Fatalf("track fields lost: %+v", got.Tracks[1])
	}
}

func TestSave_UpsertReplacesTrackList(t *testing.T) {
	a := newTestAdapter(t)

	p := domain.Playlist{
		ID:     "pl1",
		Name:   "Focus",
		Tracks: []domain.Track{{ID: "t1", Title: "First", Artist: "A"}},
	}
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	p.Name = "Deep Focus"
	p.Tracks = []domain.Track{{ID: "t2", Title: "Second", Artist: "B"}}
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}

	got, err := a.GetByID(context.Background(), "pl1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Deep Focus" {
		t.Fatalf("name = %q, want updated name", got.Name)
	}
	if len(got.Tracks) != 1 || got.Tracks[0].ID != "t2" {
		t.Fatalf("link rows not rebuilt: %+v", got.Tracks)
	}
}

func TestUpdateTrackEnergy(t *testing.T) {
	a := newTestAdapter(t)

	p := domain.Playlist{
		ID:     "pl1",
		Name:   "Focus",
		Tracks: []domain.Track{{ID: "t1", Title: "First", Artist: "A"}},
	}
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := a.UpdateTrackEnergy(context.Background(), "t1", 0.63); err != nil {
		t.Fatalf("UpdateTrackEnergy() error = %v", err)
	}

	got, err := a.GetByID(context.Background(), "pl1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Tracks[0].Energy != 0.63 {
		t.Fatalf("energy = %v, want 0.63", got.Tracks[0].Energy)
	}

	// Re-saving the playlist must not clobber the measured energy.
	if err := a.Save(context.Background(), p); err != nil {
		t.Fatalf("re-Save() error = %v", err)
	}
	got, err = a.GetByID(context.Background(), "pl1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Tracks[0].Energy != 0.63 {
		t.Fatalf("energy after re-save = %v, want 0.63 preserved", got.Tracks[0].Energy)
	}
}
