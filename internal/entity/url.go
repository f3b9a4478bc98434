// Package entity defines the entities and errors shared by the application layers.
// It includes the URL struct, which represents a stored short code mapping, and the
// errors every layer uses to report collisions, misses and exhausted retries.
package entity

import (
	"errors"
	"time"
)

var (
	// ErrShortCodeExists is returned when attempting to save a URL under a short code that is already taken.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrURLNotFound is returned when no URL is stored under the specified short code.
	ErrURLNotFound = errors.New("url not found")
	// ErrMaxRetriesExceeded is returned when no free short code was found within the allowed number of attempts.
	ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating short code")
)

// URL represents a shortened URL.
type URL struct {
	Code        string    // Code is the generated short code, the primary key of the mapping.
	OriginalURL string    // OriginalURL is the full URL that the short code resolves to.
	CreatedAt   time.Time // CreatedAt is the timestamp when the mapping was stored.
	VisitCount  int64     // VisitCount is the number of redirects served for the short code.
}

// ShortURL is the public result of shortening a URL.
type ShortURL struct {
	Code     string // Code is the short code assigned to the original URL.
	ShortURL string // ShortURL is the fully-qualified link built from the configured base URL.
}
