package service

import (
	"context"
	"strconv"
	"strings"

	"steambot/internal/domain"
	"steambot/internal/repository"
)

// ValidationError marks malformed user input. Handlers re-prompt on it
// instead of treating it as a failure.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

const (
	genreMinLength  = 2
	genreMinRating  = 70
	genreMinVotes   = 100
	budgetMinRating = 50

	// maxListed caps how many candidates a selection keyboard offers.
	maxListed = 10
)

// SearchService validates search input and queries the catalog.
type SearchService struct {
	catalog repository.Catalog
}

// NewSearchService creates a new search service.
func NewSearchService(catalog repository.Catalog) *SearchService {
	return &SearchService{catalog: catalog}
}

// ByName searches the catalog by game name.
func (s *SearchService) ByName(ctx context.Context, name string) ([]domain.GameSearchResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Msg: "порожня назва гри"}
	}
	return s.catalog.SearchGames(ctx, name)
}

// ByGenre lists games of a genre; the genre must be at least two characters.
func (s *SearchService) ByGenre(ctx context.Context, genre string) ([]domain.GameSearchResult, error) {
	genre = strings.TrimSpace(genre)
	if len(genre) < genreMinLength {
		return nil, &ValidationError{Msg: "закороткий жанр"}
	}
	games, err := s.catalog.GamesByGenre(ctx, genre, genreMinRating, genreMinVotes)
	if err != nil {
		return nil, err
	}
	return limit(games), nil
}

// ByBudget parses a dollar ceiling ("1.99" or "1,99") and lists games under it.
func (s *SearchService) ByBudget(ctx context.Context, input string) ([]domain.GameSearchResult, float64, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	max, err := strconv.ParseFloat(raw, 64)
	if err != nil || max < 0 {
		return nil, 0, &ValidationError{Msg: "некоректна сума"}
	}
	games, err := s.catalog.GamesByBudget(ctx, max, budgetMinRating)
	if err != nil {
		return nil, 0, err
	}
	return limit(games), max, nil
}

// Discounted lists today's discounted games.
func (s *SearchService) Discounted(ctx context.Context) ([]domain.GameSearchResult, error) {
	return s.catalog.DiscountedGames(ctx)
}

// ParseAppID validates a numeric game id typed by the user.
func ParseAppID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || id <= 0 {
		return 0, &ValidationError{Msg: "некоректний ID"}
	}
	return id, nil
}

func limit(games []domain.GameSearchResult) []domain.GameSearchResult {
	if len(games) > maxListed {
		return games[:maxListed]
	}
	return games
}
