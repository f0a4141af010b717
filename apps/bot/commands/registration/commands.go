package registration

import (
	"strings"

	"salonbot/internal/assistant"
	"salonbot/internal/ctxman"
	"salonbot/internal/keyboards"
	"salonbot/internal/structs"
	"salonbot/internal/texts"
	"salonbot/internal/user"
	"salonbot/internal/yclients"
	"salonbot/pkg/config"
	"salonbot/pkg/logger"
	"salonbot/pkg/tgrouter"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger   logger.Logger
	Config   config.IConfig
	UserSvc  user.Service
	YClients *yclients.Client
	Registry *assistant.Registry
}

type Commands struct {
	logger    logger.Logger
	userSvc   user.Service
	yclients  *yclients.Client
	registry  *assistant.Registry
	companyID int64
}

func New(p Params) Commands {
	return Commands{
		logger:    p.Logger,
		userSvc:   p.UserSvc,
		yclients:  p.YClients,
		registry:  p.Registry,
		companyID: p.Config.GetInt64("yclients.company_id"),
	}
}

// Start greets registered users with the main menu and walks new users into
// the contact step.
func (c *Commands) Start(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	c.logger.Info(ctx.Context, "start command", zap.Int64("user_tgid", chatID))

	if _, ok := ctxman.Get[*structs.User](ctx.Context, ctxman.UserCtx{}); ok {
		_ = ctx.UpdateState("main_menu", nil)
		c.ShowMainMenu(ctx)
		return
	}

	_ = ctx.UpdateState("waiting_contact", nil)
	msg := tgbotapi.NewMessage(chatID, texts.AskContact)
	msg.ReplyMarkup = keyboards.ShareContact()
	_, _ = ctx.Bot().Send(msg)
}

// WaitingContact accepts only the sender's own shared contact.
func (c *Commands) WaitingContact(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	contact := ctx.Update().Message.Contact

	if contact == nil || contact.UserID != chatID {
		msg := tgbotapi.NewMessage(chatID, texts.BadContact)
		msg.ReplyMarkup = keyboards.ShareContact()
		_, _ = ctx.Bot().Send(msg)
		return
	}

	phone := contact.PhoneNumber
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	_ = ctx.UpdateState("waiting_fullname", map[string]string{"phone": phone})
	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AskFullname))
}

// WaitingFullname finishes registration: a client card in the CRM plus the
// local user row.
func (c *Commands) WaitingFullname(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	text := strings.TrimSpace(ctx.Update().Message.Text)

	parts := strings.Fields(text)
	if len(parts) < 2 || len(parts) > 3 {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BadFullname))
		return
	}
	surname, name := parts[0], parts[1]
	patronymic := ""
	if len(parts) == 3 {
		patronymic = parts[2]
	}

	phone, err := ctx.GetStateData("phone")
	if err != nil || phone == "" {
		c.logger.Error(ctx.Context, "phone missing from registration state", zap.Error(err))
		_ = ctx.UpdateState("waiting_contact", nil)
		msg := tgbotapi.NewMessage(chatID, texts.AskContact)
		msg.ReplyMarkup = keyboards.ShareContact()
		_, _ = ctx.Bot().Send(msg)
		return
	}

	var yclientsID int64
	created, err := c.yclients.Clients.Create(ctx.Context, c.companyID, yclients.CreateClientBody{
		Name:       name,
		Phone:      phone,
		Surname:    yclients.Set(surname),
		Patronymic: yclients.Set(patronymic),
	})
	if err != nil {
		// The CRM card can be linked later, registration proceeds locally.
		c.logger.Error(ctx.Context, "failed to create crm client", zap.Error(err))
	} else {
		yclientsID = created.Data.ID
	}

	_, err = c.userSvc.Register(ctx.Context, structs.CreateUser{
		TelegramID: chatID,
		YClientsID: yclientsID,
		Name:       name,
		Patronymic: patronymic,
		Surname:    surname,
		Phone:      phone,
	})
	if err != nil {
		c.logger.Error(ctx.Context, "failed to register user", zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.AssistantError))
		return
	}

	// Cached assistant sessions carry the old profile, drop them.
	c.registry.Remove(chatID)

	_ = ctx.UpdateState("main_menu", nil)
	msg := tgbotapi.NewMessage(chatID, texts.RegistrationDone)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, _ = ctx.Bot().Send(msg)
}

func (c *Commands) ShowMainMenu(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	msg := tgbotapi.NewMessage(chatID, texts.Welcome)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, _ = ctx.Bot().Send(msg)
}
