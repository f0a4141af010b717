package assistant

import (
	"strings"

	bookingcmd "salonbot/apps/bot/commands/booking"
	"salonbot/internal/assistant"
	"salonbot/internal/ctxman"
	"salonbot/internal/structs"
	"salonbot/internal/texts"
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
	Logger     logger.Logger
	Registry   *assistant.Registry
	UserSvc    user.Service
	BookingCmd bookingcmd.Commands
}

type Commands struct {
	logger     logger.Logger
	registry   *assistant.Registry
	userSvc    user.Service
	bookingCmd bookingcmd.Commands
}

func New(p Params) Commands {
	return Commands{
		logger:     p.Logger,
		registry:   p.Registry,
		userSvc:    p.UserSvc,
		bookingCmd: p.BookingCmd,
	}
}

// transport adapts the bot API to what the orchestrator needs.
type transport struct {
	bot *tgbotapi.BotAPI
}

func (t transport) SendMessage(chatID int64, text string) error {
	_, err := t.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (t transport) SendTyping(chatID int64) {
	_, _ = t.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
}

// MainMenuHandler routes main-menu button presses; anything else goes to the
// assistant chat.
func (c *Commands) MainMenuHandler(ctx *tgrouter.Ctx) {
	if ctx.Update().Message == nil {
		return
	}
	text := strings.TrimSpace(ctx.Update().Message.Text)

	switch text {
	case texts.BookingButton:
		c.bookingCmd.ChooseService(ctx)
	case texts.PricesButton:
		c.bookingCmd.PriceList(ctx)
	case texts.FAQButton:
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(ctx.Update().FromChat().ID, texts.FAQ))
	case texts.ContactsButton:
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(ctx.Update().FromChat().ID, texts.Contacts))
	default:
		c.Chat(ctx)
	}
}

// Chat feeds the message to the user's assistant thread and replies with
// whatever the run produced.
func (c *Commands) Chat(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	text := strings.TrimSpace(ctx.Update().Message.Text)
	if text == "" {
		return
	}

	account, ok := ctxman.Get[*structs.User](ctx.Context, ctxman.UserCtx{})
	if !ok {
		c.logger.Warn(ctx.Context, "chat from unregistered user", zap.Int64("user_tgid", chatID))
		return
	}

	manager := c.registry.Get(*account, chatID, transport{bot: ctx.Bot()})
	reply := manager.Submit(ctx.Context, text)
	if reply == "" {
		reply = texts.AssistantError
	}

	c.userSvc.LogMessage(ctx.Context, account.ID, reply, structs.SenderAssistant)
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, reply))
}
