package testutil

import (
	"context"

	"steambot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockCatalog is a mock for repository.Catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) SearchGames(ctx context.Context, name string) ([]domain.GameSearchResult, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameSearchResult), args.Error(1)
}

func (m *MockCatalog) GameDetails(ctx context.Context, appID int, cc, lang string) (*domain.DetailsPayload, error) {
	args := m.Called(ctx, appID, cc, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DetailsPayload), args.Error(1)
}

func (m *MockCatalog) GamesByGenre(ctx context.Context, genre string, minRating, minVotes int) ([]domain.GameSearchResult, error) {
	args := m.Called(ctx, genre, minRating, minVotes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameSearchResult), args.Error(1)
}

func (m *MockCatalog) GamesByBudget(ctx context.Context, max float64, minRating int) ([]domain.GameSearchResult, error) {
	args := m.Called(ctx, max, minRating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameSearchResult), args.Error(1)
}

func (m *MockCatalog) DiscountedGames(ctx context.Context) ([]domain.GameSearchResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameSearchResult), args.Error(1)
}

func (m *MockCatalog) GameNews(ctx context.Context, appID int) ([]domain.NewsItem, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

func (m *MockCatalog) UserSettings(ctx context.Context, chatID int64) (*domain.UserSettings, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSettings), args.Error(1)
}

func (m *MockCatalog) UpdateUserSettings(ctx context.Context, settings *domain.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
