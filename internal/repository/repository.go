package repository

import (
	"context"
	"errors"
	"fmt"

	"steambot/internal/domain"
)

// ErrNotFound marks a normal empty-result case: no settings record upstream,
// no details payload for an app id. Callers substitute defaults.
var ErrNotFound = errors.New("not found")

// TransportError is returned when a catalog call fails or the upstream
// answers with a non-2xx status.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Catalog defines the remote Steam-catalog and user-settings API operations.
type Catalog interface {
	SearchGames(ctx context.Context, name string) ([]domain.GameSearchResult, error)
	GameDetails(ctx context.Context, appID int, cc, lang string) (*domain.DetailsPayload, error)
	GamesByGenre(ctx context.Context, genre string, minRating, minVotes int) ([]domain.GameSearchResult, error)
	GamesByBudget(ctx context.Context, max float64, minRating int) ([]domain.GameSearchResult, error)
	DiscountedGames(ctx context.Context) ([]domain.GameSearchResult, error)
	GameNews(ctx context.Context, appID int) ([]domain.NewsItem, error)
	UserSettings(ctx context.Context, chatID int64) (*domain.UserSettings, error)
	UpdateUserSettings(ctx context.Context, settings *domain.UserSettings) error
}
