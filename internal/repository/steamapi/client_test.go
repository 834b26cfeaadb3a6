package steamapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"steambot/internal/domain"
	"steambot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestSearchGames(t *testing.T) {
	t.Run("passes name and decodes results", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/search/games", r.URL.Path)
			assert.Equal(t, "Half-Life", r.URL.Query().Get("name"))
			json.NewEncoder(w).Encode([]domain.GameSearchResult{
				{ID: 70, Name: "Half-Life"},
			})
		})

		games, err := client.SearchGames(context.Background(), "Half-Life")

		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, 70, games[0].ID)
		assert.Equal(t, "Half-Life", games[0].Name)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.SearchGames(context.Background(), "Half-Life")

		var tErr *repository.TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, http.StatusInternalServerError, tErr.Status)
	})
}

func TestGameDetails(t *testing.T) {
	t.Run("decodes wrapped payload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/search/details", r.URL.Path)
			assert.Equal(t, "70", r.URL.Query().Get("appId"))
			assert.Equal(t, "UA", r.URL.Query().Get("cc"))
			assert.Equal(t, "uk", r.URL.Query().Get("l"))
			w.Write([]byte(`{"success":true,"data":{"name":"Half-Life","is_free":false}}`))
		})

		payload, err := client.GameDetails(context.Background(), 70, "UA", "uk")

		require.NoError(t, err)
		assert.Equal(t, "Half-Life", payload.Name)
	})

	t.Run("success false means not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":false}`))
		})

		_, err := client.GameDetails(context.Background(), 70, "UA", "uk")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("http 404 means not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GameDetails(context.Background(), 70, "UA", "uk")

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":`))
		})

		_, err := client.GameDetails(context.Background(), 70, "UA", "uk")

		var tErr *repository.TransportError
		assert.ErrorAs(t, err, &tErr)
	})
}

func TestGamesByGenre(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/spy-genre", r.URL.Path)
		assert.Equal(t, "RPG", r.URL.Query().Get("genre"))
		assert.Equal(t, "70", r.URL.Query().Get("minRating"))
		assert.Equal(t, "100", r.URL.Query().Get("minVotes"))
		json.NewEncoder(w).Encode([]domain.GameSearchResult{{ID: 440}})
	})

	games, err := client.GamesByGenre(context.Background(), "RPG", 70, 100)

	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestGamesByBudget(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/spy-budget", r.URL.Path)
		assert.Equal(t, "1.99", r.URL.Query().Get("max"))
		assert.Equal(t, "50", r.URL.Query().Get("minRating"))
		json.NewEncoder(w).Encode([]domain.GameSearchResult{{ID: 440}})
	})

	games, err := client.GamesByBudget(context.Background(), 1.99, 50)

	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestDiscountedGames(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/spy-discounts", r.URL.Path)
		json.NewEncoder(w).Encode([]domain.GameSearchResult{
			{ID: 70, Name: "Half-Life", Discount: 50},
		})
	})

	games, err := client.DiscountedGames(context.Background())

	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 50, games[0].Discount)
}

func TestGameNews(t *testing.T) {
	t.Run("decodes items", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/search/news", r.URL.Path)
			assert.Equal(t, "70", r.URL.Query().Get("appId"))
			json.NewEncoder(w).Encode([]domain.NewsItem{
				{Title: "Patch notes", URL: "https://example.com"},
			})
		})

		news, err := client.GameNews(context.Background(), 70)

		require.NoError(t, err)
		require.Len(t, news, 1)
		assert.Equal(t, "Patch notes", news[0].Title)
	})

	t.Run("degrades to empty on failure", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		news, err := client.GameNews(context.Background(), 70)

		assert.NoError(t, err)
		assert.Empty(t, news)
	})
}

func TestUserSettings(t *testing.T) {
	t.Run("decodes record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/usersettings/42", r.URL.Path)
			w.Write([]byte(`{"chatId":42,"wishlist":[70],"subscriptionOnSales":true,"subscribedGames":[440]}`))
		})

		settings, err := client.UserSettings(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), settings.ChatID)
		assert.Equal(t, []int{70}, settings.Wishlist)
		assert.True(t, settings.SubscriptionOnSales)
		assert.Equal(t, []int{440}, settings.SubscribedGames)
	})

	t.Run("missing record yields defaults", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		settings, err := client.UserSettings(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), settings.ChatID)
		assert.Empty(t, settings.Wishlist)
	})
}

func TestUpdateUserSettings(t *testing.T) {
	t.Run("puts json body", func(t *testing.T) {
		var got domain.UserSettings
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/usersettings/42", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		})

		settings := domain.NewUserSettings(42)
		settings.Wishlist = []int{70}

		err := client.UpdateUserSettings(context.Background(), settings)

		require.NoError(t, err)
		assert.Equal(t, int64(42), got.ChatID)
		assert.Equal(t, []int{70}, got.Wishlist)
	})

	t.Run("server error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		err := client.UpdateUserSettings(context.Background(), domain.NewUserSettings(42))

		var tErr *repository.TransportError
		require.ErrorAs(t, err, &tErr)
		assert.Equal(t, http.StatusBadGateway, tErr.Status)
	})
}
