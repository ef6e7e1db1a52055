package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserRegistrar records users on their first observed update
type UserRegistrar interface {
	EnsureUser(ctx context.Context, userID int64) error
}

// TrackUsers creates middleware that registers every sender before the update is handled.
// A storage failure is logged and does not block the update.
func TrackUsers(users UserRegistrar, timeout time.Duration, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			err := users.EnsureUser(ctx, sender.ID)
			cancel()

			if err != nil {
				logger.Error("Failed to ensure user exists in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
			}

			return next(c)
		}
	}
}
