package ports

import (
	"context"

	"github.com/vibechef/vibechef/internal/core/domain"
)

// Outcome classifies the result of a generative-model call. The interpreter
// treats Retryable and Fatal identically (fall back to the deterministic
// path); the split exists so the boundary never hides a failure class
// behind a broad error.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeRetryable
	OutcomeFatal
)

// GenerateResult is the explicit result type of the generative boundary.
// Spec holds a candidate specification only when Outcome is OutcomeSuccess;
// Reason explains the failure otherwise.
type GenerateResult struct {
	Outcome Outcome
	Spec    domain.PlaylistSpec
	Reason  string
}

// PromptInput carries the sanitized interpretation request across the
// generative boundary. Texts are already sanitized; the adapter truncates
// them into snippets before they reach the model.
type PromptInput struct {
	EmotionText     string
	ActivityText    string
	MusicText       string
	UserScores      map[string]float64
	AvoidExplicit   bool
	PreferredGenres []string
}

// SpecGenerator is the generative-model boundary. Implementations must
// bound the call with a timeout and retry at most once on parse failure;
// they never return a spec that failed to parse.
type SpecGenerator interface {
	GenerateSpec(ctx context.Context, in PromptInput) GenerateResult
}
