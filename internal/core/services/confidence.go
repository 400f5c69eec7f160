package services

import "github.com/vibechef/vibechef/internal/core/domain"

// ConfidenceScore rates how trustworthy a candidate specification looks.
// Pure function; used for display and logging, never for control flow.
//
// Additive heuristic: non-empty genres, non-empty descriptors, presence of
// audio feature ranges, internal consistency of every range, and a small
// bonus when the generative path produced the spec. The fallback penalty is
// floored immediately after subtraction so stacked penalties in a future
// extension cannot push the score negative mid-computation.
func ConfidenceScore(spec domain.PlaylistSpec, fallbackUsed bool) float64 {
	score := 0.0
	if len(spec.Genres) > 0 {
		score += 0.35
	}
	if len(spec.MoodDescriptors) > 0 {
		score += 0.25
	}
	if spec.AudioFeatures != (domain.SpecAudioFeatures{}) {
		score += 0.20
	}
	if featuresConsistent(spec.AudioFeatures) {
		score += 0.15
	}
	if !fallbackUsed {
		score += 0.05
	}
	if fallbackUsed {
		score -= fallbackConfidencePenalty
		if score < 0 {
			score = 0
		}
	}
	if score > 1 {
		score = 1
	}
	return domain.Round3(score)
}

func featuresConsistent(af domain.SpecAudioFeatures) bool {
	for _, r := range []domain.FloatRange{
		af.Energy, af.Valence, af.Danceability, af.Acousticness, af.Instrumentalness,
	} {
		if r.Low > r.High || r.Low < domain.MinFeature || r.High > domain.MaxFeature {
			return false
		}
	}
	t := af.TempoBPM
	return t.Low <= t.High && t.Low >= domain.MinTempo && t.High <= domain.MaxTempo
}
