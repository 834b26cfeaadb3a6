package service

import (
	"context"
	"errors"
	"sync"

	"steambot/internal/domain"
	"steambot/internal/repository"
)

// ErrNotTracked is returned when a removal targets an id the chat never added.
var ErrNotTracked = errors.New("not tracked")

// SettingsService caches per-chat settings in front of the remote store.
// Reads go through the cache; mutations write through and only update the
// cache after the remote store accepted the new value, so a failed write
// leaves the cache stale rather than falsely fresh.
type SettingsService struct {
	catalog repository.Catalog

	mu    sync.Mutex
	cache map[int64]*domain.UserSettings
}

// NewSettingsService creates a new settings service.
func NewSettingsService(catalog repository.Catalog) *SettingsService {
	return &SettingsService{
		catalog: catalog,
		cache:   make(map[int64]*domain.UserSettings),
	}
}

// Settings returns cached settings or fetches them from the remote store.
// Callers must treat the result as read-only; changes go through mutations.
func (s *SettingsService) Settings(ctx context.Context, chatID int64) (*domain.UserSettings, error) {
	s.mu.Lock()
	if cached, ok := s.cache[chatID]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	settings, err := s.catalog.UserSettings(ctx, chatID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another fetch for the same chat may have filled the entry meanwhile.
	if cached, ok := s.cache[chatID]; ok {
		return cached, nil
	}
	s.cache[chatID] = settings
	return settings, nil
}

// AddToWishlist wishlists the game. Adding an already-wishlisted id is a
// no-op and performs no write-through.
func (s *SettingsService) AddToWishlist(ctx context.Context, chatID int64, appID int) error {
	_, err := s.mutate(ctx, chatID, func(u *domain.UserSettings) bool {
		return u.AddToWishlist(appID)
	})
	return err
}

// RemoveFromWishlist drops the game from the wishlist. Returns ErrNotTracked
// when it was not wishlisted.
func (s *SettingsService) RemoveFromWishlist(ctx context.Context, chatID int64, appID int) error {
	changed, err := s.mutate(ctx, chatID, func(u *domain.UserSettings) bool {
		return u.RemoveFromWishlist(appID)
	})
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotTracked
	}
	return nil
}

// SubscribeToGameNews subscribes the chat to a game's news.
func (s *SettingsService) SubscribeToGameNews(ctx context.Context, chatID int64, appID int) error {
	_, err := s.mutate(ctx, chatID, func(u *domain.UserSettings) bool {
		return u.SubscribeToNews(appID)
	})
	return err
}

// UnsubscribeFromGameNews drops a news subscription. Returns ErrNotTracked
// when there was none.
func (s *SettingsService) UnsubscribeFromGameNews(ctx context.Context, chatID int64, appID int) error {
	changed, err := s.mutate(ctx, chatID, func(u *domain.UserSettings) bool {
		return u.UnsubscribeFromNews(appID)
	})
	if err != nil {
		return err
	}
	if !changed {
		return ErrNotTracked
	}
	return nil
}

// SetSalesSubscription switches the sales-digest flag.
func (s *SettingsService) SetSalesSubscription(ctx context.Context, chatID int64, enabled bool) error {
	_, err := s.mutate(ctx, chatID, func(u *domain.UserSettings) bool {
		if u.SubscriptionOnSales == enabled {
			return false
		}
		u.SubscriptionOnSales = enabled
		return true
	})
	return err
}

// mutate applies fn to a copy of the chat's settings, writes the copy through
// and only then replaces the cache entry. fn reports whether anything changed;
// unchanged settings are not written.
func (s *SettingsService) mutate(ctx context.Context, chatID int64, fn func(*domain.UserSettings) bool) (bool, error) {
	current, err := s.Settings(ctx, chatID)
	if err != nil {
		return false, err
	}

	next := current.Clone()
	if !fn(next) {
		return false, nil
	}

	if err := s.catalog.UpdateUserSettings(ctx, next); err != nil {
		return false, err
	}

	s.mu.Lock()
	s.cache[chatID] = next
	s.mu.Unlock()
	return true, nil
}
