package openai

import (
	"encoding/json"
	"fmt"

	"github.com/vibechef/vibechef/internal/core/ports"
)

// snippetLength caps each sanitized text embedded in the user payload.
const snippetLength = 120

type userPrompt struct {
	EmotionText     string             `json:"emotion_text"`
	ActivityText    string             `json:"activity_text"`
	MusicText       string             `json:"music_text"`
	UserScores      map[string]float64 `json:"user_scores"`
	Explicit        bool               `json:"explicit"`
	PreferredGenres []string           `json:"preferred_genres"`
	Instructions    string             `json:"instructions"`
}

// buildUserPrompt serializes the interpretation request into the JSON user
// payload. Texts arrive already sanitized; only truncation happens here.
func buildUserPrompt(in ports.PromptInput) (string, error) {
	scores := in.UserScores
	if scores == nil {
		scores = map[string]float64{}
	}
	genres := in.PreferredGenres
	if genres == nil {
		genres = []string{}
	}

	payload, err := json.Marshal(userPrompt{
		EmotionText:     snippet(in.EmotionText),
		ActivityText:    snippet(in.ActivityText),
		MusicText:       snippet(in.MusicText),
		UserScores:      scores,
		Explicit:        in.AvoidExplicit,
		PreferredGenres: genres,
		Instructions:    "Return a single JSON PlaylistSpec per schema version 1.0.0. No commentary.",
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal user prompt: %w", err)
	}
	return string(payload), nil
}

func snippet(s string) string {
	runes := []rune(s)
	if len(runes) <= snippetLength {
		return s
	}
	return string(runes[:snippetLength]) + "..."
}
