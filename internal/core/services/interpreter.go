package services

import (
	"context"
	"log"
	"strings"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

// InterpretRequest is the raw input contract from the API layer. All text
// fields are free-form and unbounded; sanitization happens here.
type InterpretRequest struct {
	EmotionText     string
	ActivityText    string
	MusicText       string
	UserScores      map[string]float64
	AvoidExplicit   bool
	PreferredGenres []string
}

// Interpreter turns free-text mood descriptions into validated playlist
// specifications: a generative path first, the deterministic keyword path
// whenever that cannot deliver. Interpret never fails and never returns an
// invalid spec; a degraded low-confidence answer always beats no answer.
type Interpreter struct {
	generator ports.SpecGenerator // nil when the generative path is disabled
	fallback  *FallbackBuilder
}

func NewInterpreter(generator ports.SpecGenerator, table domain.KeywordTable) *Interpreter {
	return &Interpreter{
		generator: generator,
		fallback:  NewFallbackBuilder(table),
	}
}

// Interpret is the single public entry point of the mood interpreter.
func (i *Interpreter) Interpret(ctx context.Context, req InterpretRequest) domain.PlaylistSpec {
	emotion := Sanitize(req.EmotionText)
	activity := Sanitize(req.ActivityText)
	music := Sanitize(req.MusicText)
	combined := strings.TrimSpace(emotion + " " + activity + " " + music)

	if combined == "" {
		return i.fallback.Build(nil, req.AvoidExplicit, req.PreferredGenres, req.UserScores)
	}

	if i.generator != nil {
		result := i.generator.GenerateSpec(ctx, ports.PromptInput{
			EmotionText:     emotion,
			ActivityText:    activity,
			MusicText:       music,
			UserScores:      req.UserScores,
			AvoidExplicit:   req.AvoidExplicit,
			PreferredGenres: req.PreferredGenres,
		})

		switch result.Outcome {
		case ports.OutcomeSuccess:
			spec := result.Spec
			spec.Metadata.FallbackUsed = false
			// Never trust the model's claimed confidence.
			spec.Metadata.InterpretationConfidence = ConfidenceScore(spec, false)
			spec = spec.Normalize()
			violations := spec.Validate()
			if len(violations) == 0 {
				return spec
			}
			log.Printf("WARN interpreter: generative spec rejected: %s", strings.Join(violations, "; "))
		default:
			log.Printf("WARN interpreter: generative call failed: %s", result.Reason)
		}
	}

	tokens := Tokenize(combined)
	return i.fallback.Build(tokens, req.AvoidExplicit, req.PreferredGenres, req.UserScores)
}
