package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func validSpec() PlaylistSpec {
	return PlaylistSpec{
		Version:         SchemaVersion,
		Genres:          []string{"indie", "pop"},
		MoodDescriptors: []string{"neutral"},
		AudioFeatures:   DefaultAudioFeatures(),
		Constraints:     Constraints{AvoidExplicit: false},
		Metadata: SpecMetadata{
			InterpretationConfidence: 0.5,
			SuggestedPlaylistName:    "Test Mix",
			MoodSummary:              "test",
			ProcessingNotes:          "test",
		},
	}
}

func TestPlaylistSpec_Normalize(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*PlaylistSpec)
		wantCheck func(t *testing.T, s PlaylistSpec)
	}{
		{
			name: "clamps continuous range into unit interval",
			mutate: func(s *PlaylistSpec) {
				s.AudioFeatures.Energy = FloatRange{-0.5, 1.5}
			},
			wantCheck: func(t *testing.T, s PlaylistSpec) {
				if s.AudioFeatures.Energy != (FloatRange{0, 1}) {
					t.Fatalf("energy not clamped: %+v", s.AudioFeatures.Energy)
				}
			},
		},
		{
			name: "swaps inverted bounds instead of rejecting",
			mutate: func(s *PlaylistSpec) {
				s.AudioFeatures.Valence = FloatRange{0.8, 0.2}
			},
			wantCheck: func(t *testing.T, s PlaylistSpec) {
				if s.AudioFeatures.Valence != (FloatRange{0.2, 0.8}) {
					t.Fatalf("valence bounds not swapped: %+v", s.AudioFeatures.Valence)
				}
			},
		},
		{
			name: "clamps tempo into legal bounds",
			mutate: func(s *PlaylistSpec) {
				s.AudioFeatures.TempoBPM = TempoRange{10, 500}
			},
			wantCheck: func(t *testing.T, s PlaylistSpec) {
				if s.AudioFeatures.TempoBPM != (TempoRange{MinTempo, MaxTempo}) {
					t.Fatalf("tempo not clamped: %+v", s.AudioFeatures.TempoBPM)
				}
			},
		},
		{
			name: "clamps confidence into unit interval",
			mutate: func(s *PlaylistSpec) {
				s.Metadata.InterpretationConfidence = 1.7
			},
			wantCheck: func(t *testing.T, s PlaylistSpec) {
				if s.Metadata.InterpretationConfidence != 1.0 {
					t.Fatalf("confidence not clamped: %v", s.Metadata.InterpretationConfidence)
				}
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := validSpec()
			tc.mutate(&s)
			normalized := s.Normalize()
			if violations := normalized.Validate(); len(violations) != 0 {
				t.Fatalf("normalized spec still invalid: %v", violations)
			}
			tc.wantCheck(t, normalized)
		})
	}
}

func TestPlaylistSpec_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*PlaylistSpec)
		wantViolation string
	}{
		{
			name:          "accepts valid spec",
			mutate:        func(s *PlaylistSpec) {},
			wantViolation: "",
		},
		{
			name:          "rejects unknown version",
			mutate:        func(s *PlaylistSpec) { s.Version = "2.0.0" },
			wantViolation: "unknown schema version",
		},
		{
			name:          "rejects empty genres",
			mutate:        func(s *PlaylistSpec) { s.Genres = nil },
			wantViolation: "genres",
		},
		{
			name: "rejects too many genres",
			mutate: func(s *PlaylistSpec) {
				s.Genres = []string{"a", "b", "c", "d", "e", "f"}
			},
			wantViolation: "genres",
		},
		{
			name:          "rejects empty descriptors",
			mutate:        func(s *PlaylistSpec) { s.MoodDescriptors = nil },
			wantViolation: "mood descriptors",
		},
		{
			name: "rejects inverted range",
			mutate: func(s *PlaylistSpec) {
				s.AudioFeatures.Danceability = FloatRange{0.9, 0.1}
			},
			wantViolation: "danceability range is inverted",
		},
		{
			name: "rejects out-of-bounds tempo",
			mutate: func(s *PlaylistSpec) {
				s.AudioFeatures.TempoBPM = TempoRange{30, 100}
			},
			wantViolation: "tempo range outside",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := validSpec()
			tc.mutate(&s)
			violations := s.Validate()

			if tc.wantViolation == "" {
				if len(violations) != 0 {
					t.Fatalf("expected no violations, got %v", violations)
				}
				return
			}
			found := false
			for _, v := range violations {
				if strings.Contains(v, tc.wantViolation) {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected violation containing %q, got %v", tc.wantViolation, violations)
			}
		})
	}
}

func TestSafeDefaultSpec(t *testing.T) {
	spec := SafeDefaultSpec(true, "boom")

	if violations := spec.Validate(); len(violations) != 0 {
		t.Fatalf("safe default must always validate, got %v", violations)
	}
	if !spec.Constraints.AvoidExplicit {
		t.Fatal("explicit flag not carried over")
	}
	if !spec.Metadata.FallbackUsed {
		t.Fatal("safe default must be flagged as fallback")
	}
	if !strings.Contains(spec.Metadata.ProcessingNotes, "boom") {
		t.Fatalf("failure reason missing from notes: %q", spec.Metadata.ProcessingNotes)
	}
}

func TestRangeJSON(t *testing.T) {
	spec := validSpec()
	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"energy":[0.4,0.6]`) {
		t.Fatalf("ranges must serialize as [low, high] arrays, got %s", data)
	}
	if !strings.Contains(string(data), `"tempo_bpm":[80,110]`) {
		t.Fatalf("tempo must serialize as [low, high] array, got %s", data)
	}

	var decoded PlaylistSpec
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.AudioFeatures.Energy != spec.AudioFeatures.Energy {
		t.Fatalf("energy round-trip mismatch: %+v", decoded.AudioFeatures.Energy)
	}

	var tempo TempoRange
	if err := json.Unmarshal([]byte(`[95.7, 120.2]`), &tempo); err != nil {
		t.Fatalf("unmarshal fractional tempo: %v", err)
	}
	if tempo != (TempoRange{95, 120}) {
		t.Fatalf("fractional tempo must truncate, got %+v", tempo)
	}

	var r FloatRange
	if err := json.Unmarshal([]byte(`"not a range"`), &r); err == nil {
		t.Fatal("expected error for non-array range")
	}
}
