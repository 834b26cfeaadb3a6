package handler

import (
	"context"
	"strings"

	"steambot/internal/repository"
	"steambot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	defaultCurrency = "UA"
	defaultLanguage = "uk"
)

const (
	msgGenericError   = "Сталася помилка. Спробуйте пізніше."
	msgTransportError = "⚠️ Не вдалося звʼязатися з сервісом. Спробуйте пізніше."
)

// messageSender is the part of *tele.Bot the handler needs when it has to
// know the id of the message it just sent.
type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// Handler routes inbound updates to command, state and callback handlers.
type Handler struct {
	ctx      context.Context
	bot      *tele.Bot
	api      messageSender
	settings *service.SettingsService
	search   *service.SearchService
	catalog  repository.Catalog
	states   *StateStore
	logger   *zap.Logger
}

// NewHandler creates a new handler instance. ctx is cancelled at shutdown
// and bounds every catalog call made on behalf of an update.
func NewHandler(
	ctx context.Context,
	bot *tele.Bot,
	settings *service.SettingsService,
	search *service.SearchService,
	catalog repository.Catalog,
	states *StateStore,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		ctx:      ctx,
		bot:      bot,
		settings: settings,
		search:   search,
		catalog:  catalog,
		states:   states,
		logger:   logger,
	}
	if bot != nil {
		h.api = bot
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/help", h.handleHelp)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleText routes every free-text message: an armed conversation state wins
// over the command table, and "back" cancels the state before routing.
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Chat().ID
	text := strings.TrimSpace(c.Text())

	var err error
	if data, ok := h.states.Take(chatID); ok && text != menuBack {
		err = h.handleState(c, data, text)
	} else {
		err = h.handleCommand(c, text)
	}
	if err == nil {
		return nil
	}

	h.logger.Error("message handling failed",
		zap.Int64("chat_id", chatID),
		zap.String("text", text),
		zap.Error(err),
	)
	return c.Send(msgGenericError, mainMenu())
}

// ignoreNotModified drops the edit error Telegram returns when the message
// already shows the requested content (another callback got there first).
func ignoreNotModified(err error) error {
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		return nil
	}
	return err
}
