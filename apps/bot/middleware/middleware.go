package middleware

import (
	"context"
	"errors"

	"salonbot/internal/ctxman"
	"salonbot/internal/structs"
	"salonbot/internal/user"
	"salonbot/pkg/logger"
	"salonbot/pkg/tgrouter"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger  logger.Logger
	UserSvc user.Service
}

type Middleware interface {
	AccountMw(next tgrouter.Handler) tgrouter.Handler
}

type mw struct {
	logger  logger.Logger
	userSvc user.Service
}

func New(p Params) Middleware {
	return &mw{
		logger:  p.Logger,
		userSvc: p.UserSvc,
	}
}

// AccountMw resolves the local user for the update and stashes it in the
// context. Unregistered users pass through with no account: the registration
// flow handles them.
func (m *mw) AccountMw(next tgrouter.Handler) tgrouter.Handler {
	return func(c *tgrouter.Ctx) {
		tgID := c.Update().FromChat().ID

		account, err := m.userSvc.GetByTelegramID(c.Context, tgID)
		if err != nil && !errors.Is(err, structs.ErrNotFound) {
			m.logger.Error(c.Context, "failed to get account", zap.Error(err))
			return
		}

		if err == nil {
			c.Context = context.WithValue(c.Context, ctxman.UserCtx{}, &account)
			_ = m.userSvc.Touch(c.Context, tgID)

			if msg := c.Update().Message; msg != nil && msg.Text != "" {
				m.userSvc.LogMessage(c.Context, account.ID, msg.Text, structs.SenderUser)
			}
		}

		typing := tgbotapi.NewChatAction(tgID, tgbotapi.ChatTyping)
		_, _ = c.Bot().Request(typing)

		next(c)
	}
}
