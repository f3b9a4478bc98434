package usecase

import (
	"context"
	"fmt"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type urlReader interface {
	RetrieveByCode(ctx context.Context, code string) (*entity.URL, error)
}

type StatsUseCase struct {
	urlRepo urlReader
}

func NewStatsUseCase(urlRepo urlReader) *StatsUseCase {
	return &StatsUseCase{urlRepo: urlRepo}
}

func (uc *StatsUseCase) Stats(ctx context.Context, code string) (*entity.URL, error) {
	const op = "usecase.StatsUseCase.Stats"

	url, err := uc.urlRepo.RetrieveByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url stats: %w", op, err)
	}

	return url, nil
}
