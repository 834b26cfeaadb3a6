package handler

import (
	"errors"
	"fmt"

	"steambot/internal/domain"
	"steambot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleState processes a message consumed by an armed conversation state.
// The state was already taken from the store: handlers re-arm explicitly when
// the user should retry, otherwise the chat falls back to idle.
func (h *Handler) handleState(c tele.Context, data domain.StateData, text string) error {
	switch data.State {
	case domain.StateAwaitingName:
		return h.stateSearchByName(c, text)
	case domain.StateAwaitingGenre:
		return h.stateSearchByGenre(c, text)
	case domain.StateAwaitingBudget:
		return h.stateSearchByBudget(c, text)
	case domain.StateAwaitingRemoveID:
		return h.stateRemoveFromWishlist(c, text)
	case domain.StateAwaitingUnsubscribeID:
		return h.stateUnsubscribe(c, text)
	case domain.StateAwaitingGameSelection:
		return h.stateGameSelection(c, text)
	default:
		h.logger.Warn("unknown conversation state",
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("state", string(data.State)),
		)
		return c.Send("Щось пішло не так, повернімося в меню.", mainMenu())
	}
}

func (h *Handler) stateSearchByName(c tele.Context, name string) error {
	chatID := c.Chat().ID

	games, err := h.search.ByName(h.ctx, name)
	if err != nil {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingName})
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Send("Введіть назву гри:")
		}
		h.logger.Warn("name search failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send("❗ Сталася помилка при пошуку гри. Спробуйте іншу назву або перевірте правильність введення.")
	}
	if len(games) == 0 {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingName})
		return c.Send("😕 Гру з такою назвою не знайдено. Спробуйте ще раз.")
	}

	return h.offerSelection(c, "Оберіть гру з результатів:", games)
}

func (h *Handler) stateSearchByGenre(c tele.Context, genre string) error {
	chatID := c.Chat().ID

	games, err := h.search.ByGenre(h.ctx, genre)
	if err != nil {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingGenre})
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Send("❗️ Введіть жанр гри англійською. Наприклад: RPG, Action, Indie, MMO")
		}
		h.logger.Warn("genre search failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError)
	}
	if len(games) == 0 {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingGenre})
		return c.Send(fmt.Sprintf("😕 Ігор з жанром \"%s\" не знайдено. Спробуйте інший жанр. Наприклад: Strategy, Racing.", genre))
	}

	return h.offerSelection(c, fmt.Sprintf("🎮 Ось ігри у жанрі %s:", genre), games)
}

func (h *Handler) stateSearchByBudget(c tele.Context, input string) error {
	chatID := c.Chat().ID

	games, max, err := h.search.ByBudget(h.ctx, input)
	if err != nil {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingBudget})
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return c.Send("❗ Введіть коректну суму в доларах (наприклад: 1.99 або 0.5).")
		}
		h.logger.Warn("budget search failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError)
	}
	if len(games) == 0 {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingBudget})
		return c.Send("😕 Ігор у цьому бюджеті не знайдено. Спробуйте вказати більший ліміт.")
	}

	return h.offerSelection(c, fmt.Sprintf("🎮 Ось ігри до $%.2f:", max), games)
}

func (h *Handler) stateRemoveFromWishlist(c tele.Context, input string) error {
	chatID := c.Chat().ID

	appID, err := service.ParseAppID(input)
	if err != nil {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingRemoveID})
		return c.Send("❌ Некоректний ID. Спробуйте ще раз або натисніть ⬅️ Назад.")
	}

	switch err := h.settings.RemoveFromWishlist(h.ctx, chatID, appID); {
	case errors.Is(err, service.ErrNotTracked):
		return c.Send(fmt.Sprintf("❌ Гри з ID %d немає у вашому вішлісті.", appID), mainMenu())
	case err != nil:
		h.logger.Error("wishlist removal failed", zap.Int64("chat_id", chatID), zap.Int("app_id", appID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	return c.Send(fmt.Sprintf("✅ Гру з ID %d успішно видалено з вішліста.", appID), mainMenu())
}

func (h *Handler) stateUnsubscribe(c tele.Context, input string) error {
	chatID := c.Chat().ID

	appID, err := service.ParseAppID(input)
	if err != nil {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingUnsubscribeID})
		return c.Send("❗ Некоректний ID. Спробуйте ще раз або натисніть ⬅️ Назад.")
	}

	switch err := h.settings.UnsubscribeFromGameNews(h.ctx, chatID, appID); {
	case errors.Is(err, service.ErrNotTracked):
		return c.Send("❌ Ви не підписані на новини цієї гри.", mainMenu())
	case err != nil:
		h.logger.Error("news unsubscribe failed", zap.Int64("chat_id", chatID), zap.Int("app_id", appID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	return c.Send(fmt.Sprintf("🔕 Ви відписались від новин гри з ID %d.", appID), mainMenu())
}

func (h *Handler) stateGameSelection(c tele.Context, text string) error {
	chatID := c.Chat().ID

	appID, ok := domain.ParseSelectionLabel(text)
	if !ok {
		h.states.Set(chatID, domain.StateData{State: domain.StateAwaitingGameSelection})
		return c.Send("❌ Не вдалося розпізнати вибір. Скористайтесь кнопками зі списку.")
	}

	return h.sendGameDetails(c, appID)
}

// offerSelection shows a candidate keyboard and arms the selection state. The
// sent message id is carried in the state for later cleanup.
func (h *Handler) offerSelection(c tele.Context, prompt string, games []domain.GameSearchResult) error {
	msg, err := h.api.Send(c.Chat(), prompt, selectionKeyboard(games))
	if err != nil {
		return err
	}
	h.states.Set(c.Chat().ID, domain.StateData{
		State:            domain.StateAwaitingGameSelection,
		RetractMessageID: msg.ID,
	})
	return nil
}
