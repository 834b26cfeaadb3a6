package steamapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"steambot/internal/domain"
	"steambot/internal/repository"

	"go.uber.org/zap"
)

// Client implements repository.Catalog over the remote HTTP API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates a catalog client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// SearchGames queries the catalog by game name.
func (c *Client) SearchGames(ctx context.Context, name string) ([]domain.GameSearchResult, error) {
	q := url.Values{"name": {name}}
	var games []domain.GameSearchResult
	if err := c.getJSON(ctx, "search games", "/api/search/games", q, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GameDetails fetches the raw details payload for one app id.
// Returns repository.ErrNotFound when the upstream has no payload.
func (c *Client) GameDetails(ctx context.Context, appID int, cc, lang string) (*domain.DetailsPayload, error) {
	q := url.Values{
		"appId": {strconv.Itoa(appID)},
		"cc":    {cc},
		"l":     {lang},
	}
	var resp struct {
		Success bool                   `json:"success"`
		Data    *domain.DetailsPayload `json:"data"`
	}
	if err := c.getJSON(ctx, "game details", "/api/search/details", q, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data == nil {
		return nil, repository.ErrNotFound
	}
	return resp.Data, nil
}

// GamesByGenre lists games of a genre filtered by rating and vote count.
func (c *Client) GamesByGenre(ctx context.Context, genre string, minRating, minVotes int) ([]domain.GameSearchResult, error) {
	q := url.Values{
		"genre":     {genre},
		"minRating": {strconv.Itoa(minRating)},
		"minVotes":  {strconv.Itoa(minVotes)},
	}
	var games []domain.GameSearchResult
	if err := c.getJSON(ctx, "games by genre", "/api/search/spy-genre", q, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GamesByBudget lists games priced up to max dollars.
func (c *Client) GamesByBudget(ctx context.Context, max float64, minRating int) ([]domain.GameSearchResult, error) {
	q := url.Values{
		"max":       {strconv.FormatFloat(max, 'f', -1, 64)},
		"minRating": {strconv.Itoa(minRating)},
	}
	var games []domain.GameSearchResult
	if err := c.getJSON(ctx, "games by budget", "/api/search/spy-budget", q, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// DiscountedGames lists today's discounted games.
func (c *Client) DiscountedGames(ctx context.Context) ([]domain.GameSearchResult, error) {
	var games []domain.GameSearchResult
	if err := c.getJSON(ctx, "discounted games", "/api/search/spy-discounts", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// GameNews fetches news entries for an app id. Degrades to an empty list on
// any failure: news is decoration, never worth failing a reply over.
func (c *Client) GameNews(ctx context.Context, appID int) ([]domain.NewsItem, error) {
	q := url.Values{"appId": {strconv.Itoa(appID)}}
	var items []domain.NewsItem
	if err := c.getJSON(ctx, "game news", "/api/search/news", q, &items); err != nil {
		c.logger.Warn("news lookup failed",
			zap.Int("app_id", appID),
			zap.Error(err),
		)
		return nil, nil
	}
	return items, nil
}

// UserSettings fetches per-chat settings. A missing record yields fresh
// defaults, not an error.
func (c *Client) UserSettings(ctx context.Context, chatID int64) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	err := c.getJSON(ctx, "user settings", fmt.Sprintf("/api/usersettings/%d", chatID), nil, &settings)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.NewUserSettings(chatID), nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateUserSettings writes settings through to the remote store.
func (c *Client) UpdateUserSettings(ctx context.Context, settings *domain.UserSettings) error {
	const op = "update user settings"

	body, err := json.Marshal(settings)
	if err != nil {
		return &repository.TransportError{Op: op, Err: err}
	}

	u := fmt.Sprintf("%s/api/usersettings/%d", c.baseURL, settings.ChatID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, u, bytes.NewReader(body))
	if err != nil {
		return &repository.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &repository.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &repository.TransportError{Op: op, Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &repository.TransportError{Op: op, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &repository.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return repository.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &repository.TransportError{Op: op, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &repository.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
