package handler

import (
	"errors"

	"steambot/internal/domain"
	"steambot/internal/repository"
	"steambot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCallback handles ALL callback queries. Unknown or malformed actions
// are acknowledged and dropped.
func (h *Handler) handleCallback(c tele.Context) error {
	cb := c.Callback()
	if cb == nil {
		return nil
	}

	action, err := DecodeAction(cb.Data)
	if err != nil {
		h.logger.Debug("ignoring unknown callback",
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("data", cb.Data),
		)
		return c.Respond()
	}

	switch action.Kind {
	case ActionAddWishlist:
		return h.callbackAddWishlist(c, action)
	case ActionSubscribeNews:
		return h.callbackSubscribeNews(c, action)
	case ActionUnsubscribeNews:
		return h.callbackUnsubscribeNews(c, action)
	case ActionConvertCurrency:
		return h.callbackConvertCurrency(c, action)
	case ActionSubscribeSales:
		return h.callbackSetSalesSubscription(c, true)
	case ActionUnsubscribeSales:
		return h.callbackSetSalesSubscription(c, false)
	}
	// noop
	return c.Respond()
}

func (h *Handler) callbackAddWishlist(c tele.Context, action Action) error {
	chatID := c.Chat().ID

	if err := h.settings.AddToWishlist(h.ctx, chatID, action.AppID); err != nil {
		h.logger.Error("wishlist add failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "⚠️ Не вдалося оновити вішліст"})
	}

	if err := h.refreshDetailsMessage(c, action.AppID, action.Currency); err != nil {
		h.logger.Warn("details refresh failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
	}
	return c.Respond(&tele.CallbackResponse{Text: "✅ Додано у вішліст"})
}

func (h *Handler) callbackSubscribeNews(c tele.Context, action Action) error {
	chatID := c.Chat().ID

	if err := h.settings.SubscribeToGameNews(h.ctx, chatID, action.AppID); err != nil {
		h.logger.Error("news subscribe failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "⚠️ Не вдалося оформити підписку"})
	}

	if err := h.refreshDetailsKeyboard(c, action.AppID); err != nil {
		h.logger.Warn("keyboard refresh failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
	}
	return c.Respond(&tele.CallbackResponse{Text: "✅ Підписка активна!"})
}

func (h *Handler) callbackUnsubscribeNews(c tele.Context, action Action) error {
	chatID := c.Chat().ID

	switch err := h.settings.UnsubscribeFromGameNews(h.ctx, chatID, action.AppID); {
	case errors.Is(err, service.ErrNotTracked):
		return c.Respond(&tele.CallbackResponse{Text: "Ви не були підписані"})
	case err != nil:
		h.logger.Error("news unsubscribe failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "⚠️ Не вдалося скасувати підписку"})
	}

	if err := h.refreshDetailsKeyboard(c, action.AppID); err != nil {
		h.logger.Warn("keyboard refresh failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
	}
	return c.Respond(&tele.CallbackResponse{Text: "🔕 Підписку скасовано"})
}

func (h *Handler) callbackConvertCurrency(c tele.Context, action Action) error {
	chatID := c.Chat().ID

	// action.Currency is the target of the toggle.
	if err := h.refreshDetailsMessage(c, action.AppID, action.Currency); err != nil {
		h.logger.Error("currency conversion failed", zap.Int64("chat_id", chatID), zap.Int("app_id", action.AppID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "⚠️ Не вдалося конвертувати ціну"})
	}
	return c.Respond()
}

func (h *Handler) callbackSetSalesSubscription(c tele.Context, enabled bool) error {
	chatID := c.Chat().ID

	if err := h.settings.SetSalesSubscription(h.ctx, chatID, enabled); err != nil {
		h.logger.Error("sales toggle failed", zap.Int64("chat_id", chatID), zap.Bool("enabled", enabled), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "⚠️ Не вдалося оновити підписку"})
	}

	if err := ignoreNotModified(c.Edit(salesToggleKeyboard(enabled))); err != nil {
		h.logger.Warn("sales keyboard refresh failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	if enabled {
		return c.Respond(&tele.CallbackResponse{Text: "✅ Ви підписались на знижки"})
	}
	return c.Respond(&tele.CallbackResponse{Text: "🔕 Ви відписались від знижок"})
}

// refreshDetailsKeyboard rebuilds only the inline keyboard under a details
// message, keeping the shown caption and its default currency.
func (h *Handler) refreshDetailsKeyboard(c tele.Context, appID int) error {
	chatID := c.Chat().ID

	settings, err := h.settings.Settings(h.ctx, chatID)
	if err != nil {
		return err
	}

	payload, err := h.catalog.GameDetails(h.ctx, appID, defaultCurrency, defaultLanguage)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}

	details := domain.BuildGameDetails(payload, appID, settings.Wishlist)
	return ignoreNotModified(c.Edit(detailsKeyboard(details, defaultCurrency, settings.SubscribedGames)))
}
