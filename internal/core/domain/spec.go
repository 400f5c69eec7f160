package domain

import (
	"encoding/json"
	"fmt"
)

// SchemaVersion is the playlist specification contract version.
// Consumers must reject specs carrying any other version.
const SchemaVersion = "1.0.0"

// Legal numeric bounds for audio feature ranges.
const (
	MinFeature = 0.0
	MaxFeature = 1.0
	MinTempo   = 50
	MaxTempo   = 200
)

// List size caps enforced by validation.
const (
	MaxGenres      = 5
	MaxDescriptors = 6
)

// FloatRange is a closed interval over a continuous audio feature.
// It serializes as a two-element JSON array [low, high].
type FloatRange struct {
	Low  float64
	High float64
}

// Mid returns the midpoint of the range.
func (r FloatRange) Mid() float64 {
	return (r.Low + r.High) / 2.0
}

// MarshalJSON encodes the range as [low, high].
func (r FloatRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Low, r.High})
}

// UnmarshalJSON decodes a [low, high] array.
func (r *FloatRange) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("domain: float range must be a [low, high] array: %w", err)
	}
	r.Low, r.High = pair[0], pair[1]
	return nil
}

// TempoRange is a closed integer interval in beats per minute.
// It serializes as a two-element JSON array [low, high].
type TempoRange struct {
	Low  int
	High int
}

// Mid returns the midpoint of the range.
func (r TempoRange) Mid() float64 {
	return float64(r.Low+r.High) / 2.0
}

// MarshalJSON encodes the range as [low, high].
func (r TempoRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.Low, r.High})
}

// UnmarshalJSON decodes a [low, high] array. Fractional BPM values from
// loosely formatted generative output are truncated to integers.
func (r *TempoRange) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("domain: tempo range must be a [low, high] array: %w", err)
	}
	r.Low, r.High = int(pair[0]), int(pair[1])
	return nil
}

// YearRange bounds track release years. Serializes as [from, to].
type YearRange struct {
	From int
	To   int
}

func (r YearRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{r.From, r.To})
}

func (r *YearRange) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("domain: year range must be a [from, to] array: %w", err)
	}
	r.From, r.To = pair[0], pair[1]
	return nil
}

// SpecAudioFeatures holds the six target ranges of a playlist specification.
type SpecAudioFeatures struct {
	Energy           FloatRange `json:"energy"`
	Valence          FloatRange `json:"valence"`
	Danceability     FloatRange `json:"danceability"`
	Acousticness     FloatRange `json:"acousticness"`
	Instrumentalness FloatRange `json:"instrumentalness"`
	TempoBPM         TempoRange `json:"tempo_bpm"`
}

// Constraints carries hard filters the catalog client applies to results.
type Constraints struct {
	AvoidExplicit    bool       `json:"avoid_explicit"`
	ReleaseYearRange *YearRange `json:"release_year_range"`
	PopularityMin    *int       `json:"popularity_min"`
}

// SpecMetadata carries display and audit information about an interpretation.
type SpecMetadata struct {
	InterpretationConfidence float64 `json:"interpretation_confidence"`
	SuggestedPlaylistName    string  `json:"suggested_playlist_name"`
	MoodSummary              string  `json:"mood_summary"`
	ProcessingNotes          string  `json:"processing_notes"`
	FallbackUsed             bool    `json:"fallback_used"`
}

// PlaylistSpec is the sole output contract of mood interpretation.
// A spec is built fresh per request, validated before it leaves the
// interpreter, and treated as immutable by consumers.
type PlaylistSpec struct {
	Version         string            `json:"version"`
	Genres          []string          `json:"genres"`
	MoodDescriptors []string          `json:"mood_descriptors"`
	AudioFeatures   SpecAudioFeatures `json:"audio_features"`
	Constraints     Constraints       `json:"constraints"`
	Metadata        SpecMetadata      `json:"metadata"`
}

// DefaultAudioFeatures returns the neutral target ranges used when no
// keyword contributed to a feature.
func DefaultAudioFeatures() SpecAudioFeatures {
	return SpecAudioFeatures{
		Energy:           FloatRange{0.4, 0.6},
		Valence:          FloatRange{0.4, 0.6},
		Danceability:     FloatRange{0.3, 0.6},
		Acousticness:     FloatRange{0.2, 0.6},
		Instrumentalness: FloatRange{0.0, 0.4},
		TempoBPM:         TempoRange{80, 110},
	}
}
