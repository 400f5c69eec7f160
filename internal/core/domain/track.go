package domain

// Track is a catalog track selected for a playlist.
type Track struct {
	ID         string  `json:"id"`
	Title      string  `json:"name"`
	Artist     string  `json:"artists"`
	Album      string  `json:"album,omitempty"`
	URI        string  `json:"uri"`
	Explicit   bool    `json:"explicit"`
	Popularity int     `json:"popularity"`
	PreviewURL string  `json:"preview_url,omitempty"`
	Energy     float64 `json:"energy,omitempty"` // measured from the preview, 0 until analyzed
}
