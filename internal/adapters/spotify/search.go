package spotify

import (
	"context"
	"fmt"
	"log"

	"github.com/zmb3/spotify/v2"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

const keywordSearchLimit = 10

// SearchTracks resolves a playlist spec into tracks. Recommendations
// seeded by the spec's genres and feature midpoints come first; when those
// fall short, descriptor keyword searches top the list up. Explicit tracks
// are filtered when the spec demands it and duplicates are dropped.
func (c *Client) SearchTracks(ctx context.Context, spec domain.PlaylistSpec, limit int) ([]domain.Track, error) {
	if spec.Version != domain.SchemaVersion {
		return nil, fmt.Errorf("spotify adapter: spec version %q: %w", spec.Version, ports.ErrUnsupportedSpecVersion)
	}
	if limit <= 0 {
		limit = 20
	}

	picker := newTrackPicker(spec.Constraints, limit)

	seeds := spotify.Seeds{Genres: seedGenres(spec.Genres)}
	attrs := spotify.NewTrackAttributes().
		TargetEnergy(spec.AudioFeatures.Energy.Mid()).
		TargetValence(spec.AudioFeatures.Valence.Mid()).
		TargetDanceability(spec.AudioFeatures.Danceability.Mid()).
		TargetTempo(spec.AudioFeatures.TempoBPM.Mid())

	recommendLimit := limit * 2
	if recommendLimit > 100 {
		recommendLimit = 100
	}
	recs, err := c.api.GetRecommendations(ctx, seeds, attrs, spotify.Limit(recommendLimit))
	if err != nil {
		// Keyword search below can still produce a usable result.
		log.Printf("WARN spotify adapter: recommendations failed: %v", err)
	} else {
		for _, st := range recs.Tracks {
			picker.add(simpleTrackToDomain(st))
			if picker.full() {
				return picker.tracks, nil
			}
		}
	}

	keywords := spec.MoodDescriptors
	if len(keywords) == 0 {
		keywords = []string{"happy", "chill"}
	}
	for _, keyword := range keywords {
		if picker.full() {
			break
		}
		query := buildSearchQuery(keyword)
		if query == "" {
			continue
		}
		result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(keywordSearchLimit))
		if err != nil {
			return nil, fmt.Errorf("spotify adapter: keyword search %q: %w", keyword, err)
		}
		if result.Tracks == nil {
			continue
		}
		for _, ft := range result.Tracks.Tracks {
			picker.add(fullTrackToDomain(ft))
			if picker.full() {
				break
			}
		}
	}

	return picker.tracks, nil
}

func seedGenres(genres []string) []string {
	if len(genres) > 5 {
		genres = genres[:5] // recommendation API accepts at most 5 seeds
	}
	return genres
}

// trackPicker applies the spec constraints while accumulating results:
// explicit filtering, popularity floor, and per-ID deduplication.
type trackPicker struct {
	constraints domain.Constraints
	limit       int
	seen        map[string]struct{}
	tracks      []domain.Track
}

func newTrackPicker(constraints domain.Constraints, limit int) *trackPicker {
	return &trackPicker{
		constraints: constraints,
		limit:       limit,
		seen:        make(map[string]struct{}, limit),
	}
}

func (p *trackPicker) add(t domain.Track) {
	if p.full() || t.ID == "" {
		return
	}
	if p.constraints.AvoidExplicit && t.Explicit {
		return
	}
	// Popularity is unknown (zero) on recommendation results; the floor
	// only filters tracks that report one.
	if min := p.constraints.PopularityMin; min != nil && t.Popularity > 0 && t.Popularity < *min {
		return
	}
	if _, dup := p.seen[t.ID]; dup {
		return
	}
	p.seen[t.ID] = struct{}{}
	p.tracks = append(p.tracks, t)
}

func (p *trackPicker) full() bool {
	return len(p.tracks) >= p.limit
}
