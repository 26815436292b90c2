package pixabay

import (
	"github.com/javiermolinar/pixsearch/internal/search"
)

// SearchResponse mirrors the payload returned by /api/.
type SearchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"` // hits reachable through paging
	Hits      []Hit `json:"hits"`
}

// Hit is a single image record.
type Hit struct {
	ID            int64  `json:"id"`
	PageURL       string `json:"pageURL"`
	Type          string `json:"type"`
	Tags          string `json:"tags"`
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	ImageWidth    int    `json:"imageWidth"`
	ImageHeight   int    `json:"imageHeight"`
	Views         int    `json:"views"`
	Downloads     int    `json:"downloads"`
	Likes         int    `json:"likes"`
	User          string `json:"user"`
}

// Image converts the hit into the session's image type.
func (h Hit) Image() search.Image {
	large := h.LargeImageURL
	if large == "" {
		large = h.WebformatURL
	}
	return search.Image{
		ID:           h.ID,
		ThumbnailURL: h.PreviewURL,
		WebURL:       h.WebformatURL,
		LargeURL:     large,
		PageURL:      h.PageURL,
		Tags:         h.Tags,
		User:         h.User,
		Width:        h.ImageWidth,
		Height:       h.ImageHeight,
		Views:        h.Views,
		Downloads:    h.Downloads,
		Likes:        h.Likes,
	}
}

// Result converts the response into a search result.
func (r SearchResponse) Result() search.Result {
	images := make([]search.Image, 0, len(r.Hits))
	for _, h := range r.Hits {
		images = append(images, h.Image())
	}
	return search.Result{Hits: images, TotalAvailable: r.TotalHits}
}
