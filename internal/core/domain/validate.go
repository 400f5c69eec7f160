package domain

import (
	"fmt"
	"math"
)

// Normalize returns a copy of the spec with every numeric range forced into
// its legal bounds: continuous features are clamped to [0,1] and rounded to
// three decimals, tempo is clamped to [50,200], and inverted bounds are
// swapped rather than rejected. Construction and validation are kept as two
// separate phases so validation stays testable on its own.
func (s PlaylistSpec) Normalize() PlaylistSpec {
	out := s
	out.AudioFeatures.Energy = clampFloatRange(s.AudioFeatures.Energy)
	out.AudioFeatures.Valence = clampFloatRange(s.AudioFeatures.Valence)
	out.AudioFeatures.Danceability = clampFloatRange(s.AudioFeatures.Danceability)
	out.AudioFeatures.Acousticness = clampFloatRange(s.AudioFeatures.Acousticness)
	out.AudioFeatures.Instrumentalness = clampFloatRange(s.AudioFeatures.Instrumentalness)
	out.AudioFeatures.TempoBPM = clampTempoRange(s.AudioFeatures.TempoBPM)
	out.Metadata.InterpretationConfidence = clampUnit(s.Metadata.InterpretationConfidence)
	return out
}

// Validate checks the spec against the schema invariants and returns the
// list of violations, empty when the spec is acceptable. It never mutates
// or coerces; run Normalize first for the clamp-and-swap pass.
func (s PlaylistSpec) Validate() []string {
	var violations []string

	if s.Version != SchemaVersion {
		violations = append(violations, fmt.Sprintf("unknown schema version %q", s.Version))
	}
	if len(s.Genres) < 1 || len(s.Genres) > MaxGenres {
		violations = append(violations, fmt.Sprintf("genres must hold 1-%d entries, got %d", MaxGenres, len(s.Genres)))
	}
	if len(s.MoodDescriptors) < 1 || len(s.MoodDescriptors) > MaxDescriptors {
		violations = append(violations, fmt.Sprintf("mood descriptors must hold 1-%d entries, got %d", MaxDescriptors, len(s.MoodDescriptors)))
	}

	for _, check := range []struct {
		name string
		r    FloatRange
	}{
		{"energy", s.AudioFeatures.Energy},
		{"valence", s.AudioFeatures.Valence},
		{"danceability", s.AudioFeatures.Danceability},
		{"acousticness", s.AudioFeatures.Acousticness},
		{"instrumentalness", s.AudioFeatures.Instrumentalness},
	} {
		if check.r.Low > check.r.High {
			violations = append(violations, fmt.Sprintf("%s range is inverted", check.name))
		}
		if check.r.Low < MinFeature || check.r.High > MaxFeature {
			violations = append(violations, fmt.Sprintf("%s range outside [0,1]", check.name))
		}
	}

	tempo := s.AudioFeatures.TempoBPM
	if tempo.Low > tempo.High {
		violations = append(violations, "tempo range is inverted")
	}
	if tempo.Low < MinTempo || tempo.High > MaxTempo {
		violations = append(violations, fmt.Sprintf("tempo range outside [%d,%d]", MinTempo, MaxTempo))
	}

	if c := s.Metadata.InterpretationConfidence; c < 0 || c > 1 {
		violations = append(violations, "interpretation confidence outside [0,1]")
	}

	return violations
}

// SafeDefaultSpec is the canonical substitute for a spec that failed
// validation. The failure reason lands in the processing notes so the
// degradation stays visible to callers.
func SafeDefaultSpec(avoidExplicit bool, reason string) PlaylistSpec {
	return PlaylistSpec{
		Version:         SchemaVersion,
		Genres:          []string{"lo-fi", "indie"},
		MoodDescriptors: []string{"neutral"},
		AudioFeatures:   DefaultAudioFeatures(),
		Constraints:     Constraints{AvoidExplicit: avoidExplicit},
		Metadata: SpecMetadata{
			InterpretationConfidence: 0.25,
			SuggestedPlaylistName:    "Everyday Mix",
			MoodSummary:              "Fallback default due to validation error.",
			ProcessingNotes:          "validation failed: " + reason,
			FallbackUsed:             true,
		},
	}
}

func clampFloatRange(r FloatRange) FloatRange {
	low := clampUnit(r.Low)
	high := clampUnit(r.High)
	if low > high {
		low, high = high, low
	}
	return FloatRange{Round3(low), Round3(high)}
}

func clampTempoRange(r TempoRange) TempoRange {
	low := clampTempo(r.Low)
	high := clampTempo(r.High)
	if low > high {
		low, high = high, low
	}
	return TempoRange{low, high}
}

func clampUnit(v float64) float64 {
	return math.Max(MinFeature, math.Min(MaxFeature, v))
}

func clampTempo(v int) int {
	if v < MinTempo {
		return MinTempo
	}
	if v > MaxTempo {
		return MaxTempo
	}
	return v
}

// Round3 rounds to three decimal places, the precision of every float in
// the wire contract.
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
