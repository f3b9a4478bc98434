package http

import (
	"time"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

// URL must be present but may be any string, the empty one included.
type shortenRequest struct {
	URL *string `json:"url" validate:"required"`
}

type shortenResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

func toShortenResponse(shortURL *entity.ShortURL) shortenResponse {
	return shortenResponse{
		ShortCode: shortURL.Code,
		ShortURL:  shortURL.ShortURL,
	}
}

// statsResponse is the public projection of a stored URL; created_at is RFC 3339 in UTC.
type statsResponse struct {
	OriginalURL string    `json:"original_url"`
	VisitCount  int64     `json:"visit_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func toStatsResponse(url *entity.URL) statsResponse {
	return statsResponse{
		OriginalURL: url.OriginalURL,
		VisitCount:  url.VisitCount,
		CreatedAt:   url.CreatedAt.UTC(),
	}
}
