package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Chat().ID

	h.logger.Info("chat started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	h.states.Clear(chatID)
	return c.Send(
		"Привіт! Я бот для допомоги зі Steam - магазином. Оберіть дію:",
		mainMenu(),
	)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(
		"Доступні команди:\n"+
			"/start\n"+
			menuWishlist+"\n"+
			menuSubscriptions+"\n"+
			menuDiscounts+"\n"+
			menuSearchByName+"\n"+
			menuSearchByGenre+"\n"+
			menuSearchByBudget,
		mainMenu(),
	)
}
