package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// GameSearchResult is a single row from the search and listing endpoints.
type GameSearchResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Discount int    `json:"discount"`
	Price    int64  `json:"price"`
}

// SelectionLabel is the text put on a results-keyboard button. The id is
// embedded so the pick can be mapped back without extra state.
func (g GameSearchResult) SelectionLabel() string {
	return fmt.Sprintf("%s (ID: %d)", g.Name, g.ID)
}

// ParseSelectionLabel extracts the app id from a "Name (ID: 123)" label.
func ParseSelectionLabel(text string) (int, bool) {
	idx := strings.LastIndex(text, "(ID:")
	if idx < 0 {
		return 0, false
	}
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text[idx+len("(ID:"):]), ")"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// NewsItem is one entry from the game-news endpoint.
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}
