package usecase

import (
	"context"
	"fmt"
)

type visitCounter interface {
	RetrieveAndCountVisit(ctx context.Context, code string) (string, error)
}

// RedirectUseCase resolves short codes for redirects.
type RedirectUseCase struct {
	urlRepo visitCounter
}

func NewRedirectUseCase(urlRepo visitCounter) *RedirectUseCase {
	return &RedirectUseCase{urlRepo: urlRepo}
}

// Resolve returns the original URL of code and counts the visit in the same store operation,
// so a visit is counted if and only if a URL is returned.
func (uc *RedirectUseCase) Resolve(ctx context.Context, code string) (string, error) {
	const op = "usecase.RedirectUseCase.Resolve"

	originalURL, err := uc.urlRepo.RetrieveAndCountVisit(ctx, code)
	if err != nil {
		return "", fmt.Errorf("%s: failed to resolve short code: %w", op, err)
	}

	return originalURL, nil
}
