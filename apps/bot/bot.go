package bot

import (
	"context"
	"fmt"

	assistantcmd "salonbot/apps/bot/commands/assistant"
	bookingcmd "salonbot/apps/bot/commands/booking"
	"salonbot/apps/bot/commands/registration"
	"salonbot/apps/bot/middleware"
	"salonbot/pkg/config"
	"salonbot/pkg/logger"
	"salonbot/pkg/tgrouter"
	"salonbot/pkg/tgrouter/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

var Module = fx.Options(
	registration.Module,
	bookingcmd.Module,
	assistantcmd.Module,

	middleware.Module,

	fx.Invoke(NewBot),
)

type Params struct {
	fx.In
	fx.Lifecycle

	Logger     logger.Logger
	Config     config.IConfig
	Factory    tgrouter.RouterFactory
	State      interfaces.State
	Middleware middleware.Middleware

	RegistrationCmd registration.Commands
	BookingCmd      bookingcmd.Commands
	AssistantCmd    assistantcmd.Commands
}

func NewBot(p Params) error {
	token := p.Config.GetString("bot_token")
	if token == "" {
		return fmt.Errorf("telegram bot token is not set")
	}
	tb, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("failed to initialize bot: %w", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	registerBotCommands(tb)

	r := p.Factory(tb, tgrouter.WithPoolSize(10), tgrouter.WithState(p.State))

	bot := r.Group()
	bot.Use(p.Middleware.AccountMw)

	tgrouter.On(bot, tgrouter.Cmd("start"), p.RegistrationCmd.Start)

	tgrouter.On(bot, tgrouter.State("waiting_contact"), p.RegistrationCmd.WaitingContact)
	tgrouter.On(bot, tgrouter.State("waiting_fullname"), p.RegistrationCmd.WaitingFullname)
	tgrouter.On(bot, tgrouter.State("main_menu"), p.AssistantCmd.MainMenuHandler)

	tgrouter.On(bot, tgrouter.Callback("book_service"), p.BookingCmd.ServiceChosen)
	tgrouter.On(bot, tgrouter.Callback("book_date"), p.BookingCmd.DateChosen)
	tgrouter.On(bot, tgrouter.Callback("book_time"), p.BookingCmd.TimeChosen)
	tgrouter.On(bot, tgrouter.Callback("confirm_booking"), p.BookingCmd.ConfirmBooking)

	// no saved state yet: treat the message as a main-menu interaction
	tgrouter.On(bot, tgrouter.Any(), p.AssistantCmd.MainMenuHandler)

	go r.ListenUpdate(ctx)
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info(ctx, "bot started!")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			r.Shutdown(ctx, cancel)
			p.Logger.Info(ctx, "bot stopped!")
			return nil
		},
	})

	return nil
}

func registerBotCommands(tb *tgbotapi.BotAPI) {
	cfg := tgbotapi.NewSetMyCommands([]tgbotapi.BotCommand{
		{Command: "start", Description: "Перезапустить бота"},
	}...)

	_, _ = tb.Request(cfg)
}
