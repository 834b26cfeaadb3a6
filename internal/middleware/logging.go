package middleware

import (
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every inbound update with its routing info and outcome.
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.Duration("took", time.Since(start)),
			}
			if chat := c.Chat(); chat != nil {
				fields = append(fields, zap.Int64("chat_id", chat.ID))
			}
			if cb := c.Callback(); cb != nil {
				fields = append(fields, zap.String("callback", cb.Data))
			} else {
				fields = append(fields, zap.String("text", c.Text()))
			}

			if err != nil {
				logger.Error("update failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Info("update handled", fields...)
			return nil
		}
	}
}
