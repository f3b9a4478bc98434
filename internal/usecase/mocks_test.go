package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type mockCodeGenerator struct {
	mock.Mock
}

func (g *mockCodeGenerator) Generate() (string, error) {
	args := g.Called()
	return args.String(0), args.Error(1)
}

type mockURLRepository struct {
	mock.Mock
}

func (r *mockURLRepository) Save(ctx context.Context, code, originalURL string) (*entity.URL, error) {
	args := r.Called(ctx, code, originalURL)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}

func (r *mockURLRepository) RetrieveAndCountVisit(ctx context.Context, code string) (string, error) {
	args := r.Called(ctx, code)
	return args.String(0), args.Error(1)
}

func (r *mockURLRepository) RetrieveByCode(ctx context.Context, code string) (*entity.URL, error) {
	args := r.Called(ctx, code)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}
