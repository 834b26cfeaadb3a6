package handler

import (
	"fmt"
	"strings"

	"steambot/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	tele "gopkg.in/telebot.v3"
)

// handleCommand dispatches a message with no armed state against the fixed
// command table.
func (h *Handler) handleCommand(c tele.Context, text string) error {
	chatID := c.Chat().ID

	switch text {
	case "/start":
		return h.handleStart(c)

	case "/help":
		return h.handleHelp(c)

	case menuWishlist:
		return h.showWishlist(c)

	case menuSubscriptions:
		return h.showSubscriptions(c)

	case menuDiscounts:
		return h.showDiscounts(c)

	case menuSearch:
		return c.Send("Оберіть тип пошуку:", searchMenu())

	case menuSearchByName:
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingName})
		return c.Send("Введіть назву гри:", removeKeyboard())

	case menuSearchByGenre:
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingGenre})
		return c.Send(
			"📚 Введіть жанр англійською мовою, наприклад:\n\n▫ RPG\n▫ Action\n▫ Indie\n▫ Strategy\n▫ Simulation\n▫ MMO\n\n🔁 Якщо не знаєш що ввести — спробуй RPG або Action.",
			removeKeyboard(),
		)

	case menuSearchByBudget:
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingBudget})
		return c.Send("💰 Введіть бюджет у доларах (наприклад: 1.5, 3.99, 0.49):", removeKeyboard())

	case menuRemoveFromWishlist:
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingRemoveID})
		return c.Send("Введіть <b>ID гри</b>, яку хочете видалити:", removeKeyboard(), tele.ModeHTML)

	case menuUnsubscribe:
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingUnsubscribeID})
		return c.Send("Введіть <b>ID гри</b>, від новин якої хочете відписатись:", removeKeyboard(), tele.ModeHTML)

	case menuBack:
		h.states.Clear(chatID)
		return c.Send("Головне меню:", mainMenu())

	default:
		return c.Send("Невідома команда. Використайте меню.", mainMenu())
	}
}

// showWishlist lists the wishlisted games, resolving names concurrently.
func (h *Handler) showWishlist(c tele.Context) error {
	chatID := c.Chat().ID

	settings, err := h.settings.Settings(h.ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	if len(settings.Wishlist) == 0 {
		return c.Send("Список бажань порожній.", mainMenu())
	}

	lines := make([]string, len(settings.Wishlist))
	g, ctx := errgroup.WithContext(h.ctx)
	for i, appID := range settings.Wishlist {
		i, appID := i, appID
		g.Go(func() error {
			payload, err := h.catalog.GameDetails(ctx, appID, defaultCurrency, defaultLanguage)
			if err != nil {
				// Entry stays listed by id; one broken lookup must not hide
				// the rest of the wishlist.
				lines[i] = fmt.Sprintf("🎮 Гра з ID %d", appID)
				return nil
			}
			lines[i] = fmt.Sprintf("🎮 %s (ID: %d)", payload.Name, appID)
			return nil
		})
	}
	_ = g.Wait()

	return c.Send("Ваш список бажань:\n"+strings.Join(lines, "\n"), wishlistMenu())
}

// showSubscriptions lists followed games with their latest headline, if any.
func (h *Handler) showSubscriptions(c tele.Context) error {
	chatID := c.Chat().ID

	settings, err := h.settings.Settings(h.ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	if len(settings.SubscribedGames) == 0 {
		return c.Send("❗ Ви ще не підписані на новини жодної гри.", mainMenu())
	}

	lines := make([]string, len(settings.SubscribedGames))
	g, ctx := errgroup.WithContext(h.ctx)
	for i, appID := range settings.SubscribedGames {
		i, appID := i, appID
		g.Go(func() error {
			line := fmt.Sprintf("▪️ Гра з ID %d", appID)
			if payload, err := h.catalog.GameDetails(ctx, appID, defaultCurrency, defaultLanguage); err == nil {
				line = fmt.Sprintf("▪️ %s (ID: %d)", payload.Name, appID)
			}
			if news, _ := h.catalog.GameNews(ctx, appID); len(news) > 0 && news[0].Title != "" {
				line += fmt.Sprintf("\n   📰 %s", news[0].Title)
			}
			lines[i] = line
			return nil
		})
	}
	_ = g.Wait()

	return c.Send("📬 Ви підписані на новини цих ігор:\n\n"+strings.Join(lines, "\n"), subscriptionMenu())
}

// showDiscounts lists today's discounts with the sales-digest toggle.
func (h *Handler) showDiscounts(c tele.Context) error {
	chatID := c.Chat().ID

	games, err := h.search.Discounted(h.ctx)
	if err != nil {
		h.logger.Error("discounts lookup failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}
	if len(games) == 0 {
		return c.Send("😕 Сьогодні немає ігор зі знижками.", mainMenu())
	}

	settings, err := h.settings.Settings(h.ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	lines := make([]string, 0, len(games))
	for _, g := range games {
		lines = append(lines, fmt.Sprintf("▪️ %s (ID: %d) – %d%% знижки", g.Name, g.ID, g.Discount))
	}
	text := "🔥 <b>ТОП знижок сьогодні:</b>\n\n" + strings.Join(lines, "\n")

	if err := c.Send(text, salesToggleKeyboard(settings.SubscriptionOnSales), tele.ModeHTML); err != nil {
		return err
	}
	return c.Send("⬅️ Повернутись в меню:", mainMenu())
}
