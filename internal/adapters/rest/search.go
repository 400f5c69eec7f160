package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/core/ports"
)

type searchTracksRequest struct {
	Spec  domain.PlaylistSpec `json:"spec"`
	Count int                 `json:"count"`
}

type searchTracksResponse struct {
	Tracks []domain.Track `json:"tracks"`
	Count  int            `json:"count"`
}

// SearchTracks handles POST /api/search-tracks.
func (h *Handler) SearchTracks(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	if h.curator == nil {
		writeError(w, http.StatusNotImplemented, "catalog not configured")
		return
	}

	var req searchTracksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Count <= 0 {
		req.Count = 30
	}

	tracks, err := h.curator.SearchTracks(r.Context(), req.Spec, req.Count)
	if err != nil {
		if errors.Is(err, ports.ErrUnsupportedSpecVersion) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if tracks == nil {
		tracks = []domain.Track{}
	}

	writeJSON(w, http.StatusOK, searchTracksResponse{Tracks: tracks, Count: len(tracks)})
}
