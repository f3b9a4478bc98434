package http

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

type mockShortener struct {
	mock.Mock
}

func (m *mockShortener) Shorten(ctx context.Context, originalURL string) (*entity.ShortURL, error) {
	args := m.Called(ctx, originalURL)
	shortURL, _ := args.Get(0).(*entity.ShortURL)
	return shortURL, args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, code string) (string, error) {
	args := m.Called(ctx, code)
	return args.String(0), args.Error(1)
}

type mockStatsProvider struct {
	mock.Mock
}

func (m *mockStatsProvider) Stats(ctx context.Context, code string) (*entity.URL, error) {
	args := m.Called(ctx, code)
	url, _ := args.Get(0).(*entity.URL)
	return url, args.Error(1)
}
