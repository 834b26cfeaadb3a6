package handler

import (
	"errors"

	"steambot/internal/domain"
	"steambot/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// sendGameDetails renders the details card for one game as a new message.
func (h *Handler) sendGameDetails(c tele.Context, appID int) error {
	chatID := c.Chat().ID

	settings, err := h.settings.Settings(h.ctx, chatID)
	if err != nil {
		h.logger.Error("failed to load settings", zap.Int64("chat_id", chatID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	payload, err := h.catalog.GameDetails(h.ctx, appID, defaultCurrency, defaultLanguage)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Send("Не вдалося завантажити інформацію.", mainMenu())
	}
	if err != nil {
		h.logger.Error("details lookup failed", zap.Int64("chat_id", chatID), zap.Int("app_id", appID), zap.Error(err))
		return c.Send(msgTransportError, mainMenu())
	}

	details := domain.BuildGameDetails(payload, appID, settings.Wishlist)
	if err := c.Send(details.Caption(), detailsKeyboard(details, defaultCurrency, settings.SubscribedGames), tele.ModeHTML); err != nil {
		return err
	}
	return c.Send("Що далі?", mainMenu())
}

// refreshDetailsMessage re-renders the originating details message after a
// settings mutation, in the given display currency.
func (h *Handler) refreshDetailsMessage(c tele.Context, appID int, currency string) error {
	chatID := c.Chat().ID

	settings, err := h.settings.Settings(h.ctx, chatID)
	if err != nil {
		return err
	}

	payload, err := h.catalog.GameDetails(h.ctx, appID, currency, defaultLanguage)
	if errors.Is(err, repository.ErrNotFound) {
		// The card cannot be rebuilt without a payload; leave it as is.
		return nil
	}
	if err != nil {
		return err
	}

	details := domain.BuildGameDetails(payload, appID, settings.Wishlist)
	return ignoreNotModified(
		c.Edit(details.Caption(), detailsKeyboard(details, currency, settings.SubscribedGames), tele.ModeHTML),
	)
}
