package middleware

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover turns a handler panic into a logged error and an apology message,
// so one bad update cannot take the poller down.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("handler panic", zap.Any("panic", r))
					if sendErr := c.Send("Сталася помилка. Спробуйте пізніше."); sendErr != nil {
						logger.Warn("failed to report panic to chat", zap.Error(sendErr))
					}
					err = fmt.Errorf("recovered from panic: %v", r)
				}
			}()
			return next(c)
		}
	}
}
