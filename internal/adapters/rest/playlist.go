package rest

import (
	"encoding/json"
	"net/http"

	"github.com/vibechef/vibechef/internal/core/domain"
	"github.com/vibechef/vibechef/internal/worker"
)

type createPlaylistRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Public      bool           `json:"public"`
	Tracks      []domain.Track `json:"tracks"`
}

type createPlaylistResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Name       string `json:"name"`
	TrackCount int    `json:"track_count"`
}

// CreatePlaylist handles POST /api/create-playlist. After the playlist is
// created and persisted, each track with a preview URL is queued for
// background energy analysis.
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	if h.curator == nil {
		writeError(w, http.StatusNotImplemented, "catalog not configured")
		return
	}

	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	playlist, err := h.curator.CreatePlaylist(r.Context(), req.Name, req.Description, req.Public, req.Tracks)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	if h.pool != nil {
		for _, t := range playlist.Tracks {
			if t.PreviewURL != "" {
				h.pool.Submit(worker.Job{TrackID: t.ID, PreviewURL: t.PreviewURL})
			}
		}
	}

	writeJSON(w, http.StatusCreated, createPlaylistResponse{
		ID:         playlist.ID,
		URL:        playlist.URL,
		Name:       playlist.Name,
		TrackCount: len(playlist.Tracks),
	})
}
