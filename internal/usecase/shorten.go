// Package usecase implements the short code lifecycle: shortening a URL, resolving a
// short code while counting the visit, and reading a code's statistics.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

const DefaultMaxAttempts = 5

type codeGenerator interface {
	Generate() (string, error)
}

type urlSaver interface {
	Save(ctx context.Context, code, originalURL string) (*entity.URL, error)
}

// ShortenUseCase stores a URL under a freshly generated short code.
type ShortenUseCase struct {
	gen         codeGenerator
	urlRepo     urlSaver
	baseURL     string
	maxAttempts int
}

// NewShortenUseCase returns a ShortenUseCase that builds short links on baseURL and gives up
// after maxAttempts colliding codes. A non-positive maxAttempts falls back to DefaultMaxAttempts.
func NewShortenUseCase(gen codeGenerator, urlRepo urlSaver, baseURL string, maxAttempts int) *ShortenUseCase {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	return &ShortenUseCase{
		gen:         gen,
		urlRepo:     urlRepo,
		baseURL:     strings.TrimRight(baseURL, "/"),
		maxAttempts: maxAttempts,
	}
}

// Shorten saves originalURL under a new short code. A taken code is retried with a new
// candidate; any other failure aborts at once. entity.ErrMaxRetriesExceeded is returned when
// every attempt collided.
func (uc *ShortenUseCase) Shorten(ctx context.Context, originalURL string) (*entity.ShortURL, error) {
	const op = "usecase.ShortenUseCase.Shorten"

	for i := 0; i < uc.maxAttempts; i++ {
		code, err := uc.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		url, err := uc.urlRepo.Save(ctx, code, originalURL)
		if err != nil {
			if errors.Is(err, entity.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return &entity.ShortURL{
			Code:     url.Code,
			ShortURL: uc.baseURL + "/" + url.Code,
		}, nil
	}

	return nil, fmt.Errorf("%s: %d attempts: %w", op, uc.maxAttempts, entity.ErrMaxRetriesExceeded)
}
