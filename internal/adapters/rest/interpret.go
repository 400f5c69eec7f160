package rest

import (
	"encoding/json"
	"net/http"

	"github.com/vibechef/vibechef/internal/core/services"
)

type interpretRequest struct {
	Mood          string             `json:"mood"`
	Activity      string             `json:"activity"`
	Music         string             `json:"music"`
	AvoidExplicit bool               `json:"avoid_explicit"`
	Genres        []string           `json:"genres"`
	Scores        map[string]float64 `json:"scores"`
}

// InterpretMood handles POST /api/interpret-mood. The interpreter has no
// failure path, so a decodable request always yields 200 with a spec.
func (h *Handler) InterpretMood(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	spec := h.interpreter.Interpret(r.Context(), services.InterpretRequest{
		EmotionText:     req.Mood,
		ActivityText:    req.Activity,
		MusicText:       req.Music,
		UserScores:      req.Scores,
		AvoidExplicit:   req.AvoidExplicit,
		PreferredGenres: req.Genres,
	})

	writeJSON(w, http.StatusOK, spec)
}
