package domain

import "strings"

// Feature names used as keys in keyword entries and user score maps.
const (
	FeatureEnergy           = "energy"
	FeatureValence          = "valence"
	FeatureDanceability     = "danceability"
	FeatureAcousticness     = "acousticness"
	FeatureInstrumentalness = "instrumentalness"
	FeatureTempoBPM         = "tempo_bpm"
)

// FeatureNames lists every feature in canonical order. Aggregation code
// iterates this slice instead of map keys so results stay deterministic.
var FeatureNames = []string{
	FeatureEnergy,
	FeatureValence,
	FeatureDanceability,
	FeatureAcousticness,
	FeatureInstrumentalness,
	FeatureTempoBPM,
}

// KeywordEntry maps one lowercase token to its contribution: a weight,
// candidate genres, mood descriptors, and partial feature ranges. Tempo is
// carried as a FloatRange here and truncated to integers during merging.
type KeywordEntry struct {
	Weight      float64
	Genres      []string
	Descriptors []string
	Features    map[string]FloatRange
}

// KeywordTable is the read-only reference data behind the deterministic
// fallback path: keyword entries plus a genre alias table. It is built once
// at startup, injected into the interpreter, and never mutated afterwards.
type KeywordTable struct {
	Entries map[string]KeywordEntry
	Aliases map[string]string
}

// Lookup returns the entry for a token, if any.
func (t KeywordTable) Lookup(token string) (KeywordEntry, bool) {
	e, ok := t.Entries[token]
	return e, ok
}

// NormalizeGenre lowercases and trims a genre tag and resolves it through
// the alias table ("edm" becomes "electronic").
func (t KeywordTable) NormalizeGenre(genre string) string {
	key := strings.ToLower(strings.TrimSpace(genre))
	if canonical, ok := t.Aliases[key]; ok {
		return canonical
	}
	return key
}

// DefaultKeywordTable builds the production reference table. Tokens cover
// the moods and activities the intake form offers, both as single words and
// as bigrams ("late night", "road trip").
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		Entries: map[string]KeywordEntry{
			"study": {
				Weight:      1.0,
				Genres:      []string{"lo-fi", "ambient"},
				Descriptors: []string{"focused", "calm"},
				Features: map[string]FloatRange{
					FeatureEnergy:           {0.20, 0.45},
					FeatureValence:          {0.30, 0.55},
					FeatureDanceability:     {0.10, 0.35},
					FeatureAcousticness:     {0.40, 0.80},
					FeatureInstrumentalness: {0.60, 0.95},
					FeatureTempoBPM:         {65, 85},
				},
			},
			"workout": {
				Weight:      1.0,
				Genres:      []string{"electronic", "pop"},
				Descriptors: []string{"energetic", "pump"},
				Features: map[string]FloatRange{
					FeatureEnergy:           {0.75, 1.0},
					FeatureValence:          {0.50, 0.90},
					FeatureDanceability:     {0.60, 1.0},
					FeatureAcousticness:     {0.0, 0.20},
					FeatureInstrumentalness: {0.0, 0.30},
					FeatureTempoBPM:         {120, 170},
				},
			},
			"sad": {
				Weight:      0.9,
				Genres:      []string{"indie", "acoustic"},
				Descriptors: []string{"melancholic", "sad"},
				Features: map[string]FloatRange{
					FeatureEnergy:           {0.10, 0.45},
					FeatureValence:          {0.0, 0.35},
					FeatureDanceability:     {0.10, 0.40},
					FeatureAcousticness:     {0.30, 0.80},
					FeatureInstrumentalness: {0.0, 0.60},
					FeatureTempoBPM:         {60, 100},
				},
			},
			"happy": {
				Weight:      0.8,
				Genres:      []string{"pop", "indie pop"},
				Descriptors: []string{"happy", "bright"},
				Features: map[string]FloatRange{
					FeatureEnergy:   {0.50, 0.80},
					FeatureValence:  {0.70, 1.0},
					FeatureTempoBPM: {100, 130},
				},
			},
			"party": {
				Weight:      1.0,
				Genres:      []string{"dance pop", "house"},
				Descriptors: []string{"upbeat", "festive"},
				Features: map[string]FloatRange{
					FeatureEnergy:       {0.70, 1.0},
					FeatureValence:      {0.60, 0.95},
					FeatureDanceability: {0.70, 1.0},
					FeatureTempoBPM:     {115, 135},
				},
			},
			"chill": {
				Weight:      0.8,
				Genres:      []string{"lo-fi", "r-n-b"},
				Descriptors: []string{"relaxed", "mellow"},
				Features: map[string]FloatRange{
					FeatureEnergy:       {0.20, 0.50},
					FeatureValence:      {0.40, 0.70},
					FeatureAcousticness: {0.30, 0.70},
					FeatureTempoBPM:     {70, 100},
				},
			},
			"sleep": {
				Weight:      0.9,
				Genres:      []string{"ambient"},
				Descriptors: []string{"sleepy", "soothing"},
				Features: map[string]FloatRange{
					FeatureEnergy:           {0.0, 0.20},
					FeatureInstrumentalness: {0.70, 1.0},
					FeatureTempoBPM:         {55, 75},
				},
			},
			"angry": {
				Weight:      0.8,
				Genres:      []string{"metal", "punk"},
				Descriptors: []string{"intense", "aggressive"},
				Features: map[string]FloatRange{
					FeatureEnergy:   {0.80, 1.0},
					FeatureValence:  {0.10, 0.40},
					FeatureTempoBPM: {130, 170},
				},
			},
			"romantic": {
				Weight:      0.7,
				Genres:      []string{"soul", "r-n-b"},
				Descriptors: []string{"romantic", "warm"},
				Features: map[string]FloatRange{
					FeatureValence:      {0.50, 0.80},
					FeatureAcousticness: {0.30, 0.60},
					FeatureTempoBPM:     {80, 110},
				},
			},
			"rain": {
				Weight:      0.4,
				Descriptors: []string{"rainy"},
				Features: map[string]FloatRange{
					FeatureAcousticness: {0.50, 0.90},
				},
			},
			"late night": {
				Weight:      0.6,
				Genres:      []string{"synthwave"},
				Descriptors: []string{"nocturnal", "moody"},
				Features: map[string]FloatRange{
					FeatureEnergy:   {0.30, 0.60},
					FeatureTempoBPM: {90, 115},
				},
			},
			"road trip": {
				Weight:      0.7,
				Genres:      []string{"classic rock", "indie"},
				Descriptors: []string{"singalong", "breezy"},
				Features: map[string]FloatRange{
					FeatureEnergy:   {0.55, 0.85},
					FeatureValence:  {0.60, 0.90},
					FeatureTempoBPM: {100, 130},
				},
			},
			"morning": {
				Weight:      0.5,
				Genres:      []string{"folk", "indie pop"},
				Descriptors: []string{"fresh", "gentle"},
				Features: map[string]FloatRange{
					FeatureEnergy:       {0.35, 0.60},
					FeatureValence:      {0.55, 0.85},
					FeatureAcousticness: {0.40, 0.70},
				},
			},
		},
		Aliases: map[string]string{
			"hiphop":        "hip-hop",
			"hip hop":       "hip-hop",
			"rnb":           "r-n-b",
			"r&b":           "r-n-b",
			"lofi":          "lo-fi",
			"electro":       "electronic",
			"edm":           "electronic",
			"drum and bass": "drum-and-bass",
			"dnb":           "drum-and-bass",
		},
	}
}
