package testutil

import (
	"steambot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSettings creates test settings with the given wishlist
func NewTestSettings(chatID int64, wishlist ...int) *domain.UserSettings {
	s := domain.NewUserSettings(chatID)
	s.Wishlist = append(s.Wishlist, wishlist...)
	return s
}

// NewTestDetailsPayload creates a fully populated details payload
func NewTestDetailsPayload(name string) *domain.DetailsPayload {
	score := 96
	p := &domain.DetailsPayload{
		Name:               name,
		ShortDescription:   "Named one of the best games of all time.",
		SupportedLanguages: "English<strong>*</strong>, Ukrainian",
		PriceOverview: &domain.PriceOverview{
			FinalFormatted: "10,99₴",
		},
		Metacritic:      &domain.Metacritic{Score: &score},
		Recommendations: &domain.Recommendations{Total: 120000},
		Genres:          []domain.Descriptor{{Description: "Action"}},
		Categories:      []domain.Descriptor{{Description: "Single-player"}},
	}
	return p
}
