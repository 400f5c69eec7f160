package services

import (
	"log"
	"strings"

	"github.com/vibechef/vibechef/internal/core/domain"
)

const (
	// Half-width of the window built around a merged continuous midpoint.
	featureSpread = 0.15
	// Tempo windows are rebuilt as midpoint*(1±tempoSpreadPct).
	tempoSpreadPct = 0.15
	// Blend weights when a user numeric score nudges a merged range.
	existingWeight = 0.6
	userWeight     = 0.4

	fallbackBaseConfidence    = 0.45
	fallbackConfidencePenalty = 0.15
	fallbackConfidenceFloor   = 0.15
)

type weightedRange struct {
	r domain.FloatRange
	w float64
}

// FallbackBuilder is the deterministic specification builder: given the
// same tokens, flags, genres, and scores it always produces the same spec.
// It performs no I/O and holds only the immutable keyword table.
type FallbackBuilder struct {
	table domain.KeywordTable
}

func NewFallbackBuilder(table domain.KeywordTable) *FallbackBuilder {
	return &FallbackBuilder{table: table}
}

// Build assembles a playlist spec from keyword matches. An empty token
// sequence still yields a valid spec built from user genres, user scores,
// and the neutral defaults.
func (b *FallbackBuilder) Build(tokens []string, avoidExplicit bool, userGenres []string, userScores map[string]float64) domain.PlaylistSpec {
	accumulators := make(map[string][]weightedRange, len(domain.FeatureNames))
	var collectedGenres []string
	var collectedDescriptors []string

	for _, tok := range tokens {
		entry, ok := b.table.Lookup(tok)
		if !ok {
			continue
		}
		collectedGenres = append(collectedGenres, entry.Genres...)
		collectedDescriptors = append(collectedDescriptors, entry.Descriptors...)
		for _, name := range domain.FeatureNames {
			if r, has := entry.Features[name]; has {
				accumulators[name] = append(accumulators[name], weightedRange{r: r, w: entry.Weight})
			}
		}
	}

	genres := b.assembleGenres(userGenres, collectedGenres)
	descriptors := assembleDescriptors(collectedDescriptors)

	defaults := domain.DefaultAudioFeatures()
	features := domain.SpecAudioFeatures{
		Energy:           mergeFloatFeature(accumulators[domain.FeatureEnergy], defaults.Energy),
		Valence:          mergeFloatFeature(accumulators[domain.FeatureValence], defaults.Valence),
		Danceability:     mergeFloatFeature(accumulators[domain.FeatureDanceability], defaults.Danceability),
		Acousticness:     mergeFloatFeature(accumulators[domain.FeatureAcousticness], defaults.Acousticness),
		Instrumentalness: mergeFloatFeature(accumulators[domain.FeatureInstrumentalness], defaults.Instrumentalness),
		TempoBPM:         mergeTempoFeature(accumulators[domain.FeatureTempoBPM], defaults.TempoBPM),
	}
	features = applyUserScores(features, userScores)

	confidence := fallbackBaseConfidence - fallbackConfidencePenalty
	if confidence < fallbackConfidenceFloor {
		confidence = fallbackConfidenceFloor
	}

	spec := domain.PlaylistSpec{
		Version:         domain.SchemaVersion,
		Genres:          genres,
		MoodDescriptors: descriptors,
		AudioFeatures:   features,
		Constraints:     domain.Constraints{AvoidExplicit: avoidExplicit},
		Metadata: domain.SpecMetadata{
			InterpretationConfidence: domain.Round3(confidence),
			SuggestedPlaylistName:    "Custom Mix",
			MoodSummary:              "Deterministic fallback spec generated from keywords.",
			ProcessingNotes:          fallbackNotes(tokens),
			FallbackUsed:             true,
		},
	}

	spec = spec.Normalize()
	if violations := spec.Validate(); len(violations) > 0 {
		// Should be unreachable given the clamping above; kept as a backstop.
		reason := strings.Join(violations, "; ")
		log.Printf("WARN interpreter: fallback spec rejected: %s", reason)
		return domain.SafeDefaultSpec(avoidExplicit, reason)
	}
	return spec
}

// assembleGenres puts normalized user genres first, appends keyword-derived
// ones, dedupes preserving first-seen order, and caps the list.
func (b *FallbackBuilder) assembleGenres(userGenres []string, collected []string) []string {
	var ordered []string
	for _, g := range userGenres {
		if normalized := b.table.NormalizeGenre(g); normalized != "" {
			ordered = append(ordered, normalized)
		}
	}
	ordered = append(ordered, collected...)

	seen := make(map[string]struct{}, len(ordered))
	var unique []string
	for _, g := range ordered {
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		unique = append(unique, g)
	}
	if len(unique) == 0 {
		return []string{"indie", "pop"}
	}
	if len(unique) > domain.MaxGenres {
		unique = unique[:domain.MaxGenres]
	}
	return unique
}

func assembleDescriptors(collected []string) []string {
	seen := make(map[string]struct{}, len(collected))
	var unique []string
	for _, d := range collected {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	if len(unique) == 0 {
		return []string{"neutral", "background"}
	}
	if len(unique) > 5 {
		unique = unique[:5]
	}
	return unique
}

// mergeFloatFeature computes the weighted average of contributing range
// midpoints and rebuilds a window of fixed spread around it. With no
// contributions the default range is returned unchanged.
func mergeFloatFeature(acc []weightedRange, def domain.FloatRange) domain.FloatRange {
	if len(acc) == 0 {
		return def
	}
	mid := weightedMidpoint(acc, def)
	low := mid - featureSpread
	high := mid + featureSpread
	if low < domain.MinFeature {
		low = domain.MinFeature
	}
	if high > domain.MaxFeature {
		high = domain.MaxFeature
	}
	if low > high {
		low, high = high, low
	}
	return domain.FloatRange{Low: domain.Round3(low), High: domain.Round3(high)}
}

// mergeTempoFeature does the same for tempo using a proportional window,
// truncating to integer BPM.
func mergeTempoFeature(acc []weightedRange, def domain.TempoRange) domain.TempoRange {
	if len(acc) == 0 {
		return def
	}
	mid := weightedMidpoint(acc, domain.FloatRange{Low: float64(def.Low), High: float64(def.High)})
	return tempoWindow(mid)
}

func tempoWindow(mid float64) domain.TempoRange {
	low := int(mid * (1 - tempoSpreadPct))
	high := int(mid * (1 + tempoSpreadPct))
	if low < domain.MinTempo {
		low = domain.MinTempo
	}
	if high > domain.MaxTempo {
		high = domain.MaxTempo
	}
	if low > high {
		low, high = high, low
	}
	return domain.TempoRange{Low: low, High: high}
}

func weightedMidpoint(acc []weightedRange, def domain.FloatRange) float64 {
	var totalWeight, weightedSum float64
	for _, wr := range acc {
		weightedSum += wr.r.Mid() * wr.w
		totalWeight += wr.w
	}
	if totalWeight <= 0 {
		return def.Mid()
	}
	return weightedSum / totalWeight
}

// applyUserScores blends explicit numeric hints into the merged ranges:
// new midpoint = 60% existing + 40% user value, window recentred keeping
// its half-width (tempo windows are rebuilt proportionally).
func applyUserScores(features domain.SpecAudioFeatures, userScores map[string]float64) domain.SpecAudioFeatures {
	if len(userScores) == 0 {
		return features
	}

	nudge := func(r domain.FloatRange, key string) domain.FloatRange {
		v, ok := userScores[key]
		if !ok {
			return r
		}
		half := (r.High - r.Low) / 2.0
		mid := r.Mid()*existingWeight + v*userWeight
		low := mid - half
		high := mid + half
		if low < domain.MinFeature {
			low = domain.MinFeature
		}
		if high > domain.MaxFeature {
			high = domain.MaxFeature
		}
		return domain.FloatRange{Low: domain.Round3(low), High: domain.Round3(high)}
	}

	features.Energy = nudge(features.Energy, "energy")
	features.Valence = nudge(features.Valence, "valence")
	features.Danceability = nudge(features.Danceability, "danceability")
	features.Instrumentalness = nudge(features.Instrumentalness, "instrumentalness")

	if v, ok := userScores["tempo"]; ok {
		mid := float64(int(features.TempoBPM.Mid()*existingWeight + v*userWeight))
		features.TempoBPM = tempoWindow(mid)
	}
	return features
}

func fallbackNotes(tokens []string) string {
	listed := tokens
	if len(listed) > 10 {
		listed = listed[:10]
	}
	if len(listed) == 0 {
		return "Deterministic fallback used; no tokens matched."
	}
	return "Deterministic fallback used; tokens considered: " + strings.Join(listed, ", ")
}
