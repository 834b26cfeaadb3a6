package domain

// UserSettings holds per-chat preferences kept on the remote settings API.
// Field names follow the API's JSON contract.
type UserSettings struct {
	ChatID              int64 `json:"chatId"`
	Wishlist            []int `json:"wishlist"`
	SubscriptionOnSales bool  `json:"subscriptionOnSales"`
	SubscribedGames     []int `json:"subscribedGames"`
}

// NewUserSettings returns default settings for a chat that has no record yet.
func NewUserSettings(chatID int64) *UserSettings {
	return &UserSettings{ChatID: chatID}
}

// Clone returns a deep copy so a mutation can be prepared without touching
// the cached value.
func (s *UserSettings) Clone() *UserSettings {
	clone := &UserSettings{
		ChatID:              s.ChatID,
		SubscriptionOnSales: s.SubscriptionOnSales,
	}
	clone.Wishlist = append(clone.Wishlist, s.Wishlist...)
	clone.SubscribedGames = append(clone.SubscribedGames, s.SubscribedGames...)
	return clone
}

// InWishlist reports whether the game is wishlisted.
func (s *UserSettings) InWishlist(appID int) bool {
	return containsID(s.Wishlist, appID)
}

// AddToWishlist adds the game id once. Returns false if it was already there.
func (s *UserSettings) AddToWishlist(appID int) bool {
	if s.InWishlist(appID) {
		return false
	}
	s.Wishlist = append(s.Wishlist, appID)
	return true
}

// RemoveFromWishlist removes the game id. Returns false if it was not there.
func (s *UserSettings) RemoveFromWishlist(appID int) bool {
	removed := removeID(s.Wishlist, appID)
	if removed == nil {
		return false
	}
	s.Wishlist = removed
	return true
}

// SubscribedToNews reports whether the chat follows news for the game.
func (s *UserSettings) SubscribedToNews(appID int) bool {
	return containsID(s.SubscribedGames, appID)
}

// SubscribeToNews adds a news subscription once. Returns false if it existed.
func (s *UserSettings) SubscribeToNews(appID int) bool {
	if s.SubscribedToNews(appID) {
		return false
	}
	s.SubscribedGames = append(s.SubscribedGames, appID)
	return true
}

// UnsubscribeFromNews drops a news subscription. Returns false if absent.
func (s *UserSettings) UnsubscribeFromNews(appID int) bool {
	removed := removeID(s.SubscribedGames, appID)
	if removed == nil {
		return false
	}
	s.SubscribedGames = removed
	return true
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// removeID returns a new slice without id, or nil when id was not present.
func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			out := make([]int, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	return nil
}
