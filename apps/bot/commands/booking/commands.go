package booking

import (
	"fmt"
	"strings"
	"time"

	bookingsvc "salonbot/internal/booking"
	"salonbot/internal/ctxman"
	"salonbot/internal/keyboards"
	"salonbot/internal/structs"
	"salonbot/internal/texts"
	"salonbot/pkg/logger"
	"salonbot/pkg/tgrouter"
	"salonbot/pkg/tgrouter/callback"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(New)

type Params struct {
	fx.In
	Logger     logger.Logger
	BookingSvc bookingsvc.Service
}

type Commands struct {
	logger     logger.Logger
	bookingSvc bookingsvc.Service
}

func New(p Params) Commands {
	return Commands{
		logger:     p.Logger,
		bookingSvc: p.BookingSvc,
	}
}

// ChooseService opens the booking funnel with the cached service list.
func (c *Commands) ChooseService(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	services, err := c.bookingSvc.BookableServices(ctx.Context)
	if err != nil || len(services) == 0 {
		if err != nil {
			c.logger.Error(ctx.Context, "->bookingSvc.BookableServices", zap.Error(err))
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.ServicesUnavailable))
		return
	}

	msg := tgbotapi.NewMessage(chatID, texts.ChooseService)
	msg.ReplyMarkup = keyboards.Services(services)
	_, _ = ctx.Bot().Send(msg)
}

// ServiceChosen handles the book_service callback and shows free dates.
func (c *Commands) ServiceChosen(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	serviceID := cast.ToInt64(callback.Value(ctx.Update().CallbackQuery.Data))
	c.answerCallback(ctx)

	if serviceID == 0 {
		return
	}

	dates, err := c.bookingSvc.BookableDates(ctx.Context, []int64{serviceID})
	if err != nil || len(dates) == 0 {
		if err != nil {
			c.logger.Error(ctx.Context, "->bookingSvc.BookableDates", zap.Error(err))
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.DatesUnavailable))
		return
	}

	if len(dates) > 12 {
		dates = dates[:12]
	}

	_ = ctx.UpdateStateData(map[string]string{"service_id": cast.ToString(serviceID)})

	msg := tgbotapi.NewMessage(chatID, texts.ChooseDate)
	msg.ReplyMarkup = keyboards.Dates(dates)
	_, _ = ctx.Bot().Send(msg)
}

// DateChosen handles the book_date callback and shows free seances.
func (c *Commands) DateChosen(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	date := callback.Value(ctx.Update().CallbackQuery.Data)
	c.answerCallback(ctx)

	serviceID := c.stateServiceID(ctx)
	if serviceID == 0 || date == "" {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.TimesUnavailable))
		return
	}

	seances, err := c.bookingSvc.BookableTimes(ctx.Context, 0, date, []int64{serviceID})
	if err != nil || len(seances) == 0 {
		if err != nil {
			c.logger.Error(ctx.Context, "->bookingSvc.BookableTimes", zap.Error(err))
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.TimesUnavailable))
		return
	}

	msg := tgbotapi.NewMessage(chatID, texts.ChooseTime)
	msg.ReplyMarkup = keyboards.Times(seances)
	_, _ = ctx.Bot().Send(msg)
}

// TimeChosen handles the book_time callback and asks for confirmation. The
// datetime rides in state because callback payloads cannot carry spaces.
func (c *Commands) TimeChosen(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	datetime := callback.Value(ctx.Update().CallbackQuery.Data)
	c.answerCallback(ctx)

	serviceID := c.stateServiceID(ctx)
	if serviceID == 0 || datetime == "" {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BookingFailed))
		return
	}

	_ = ctx.UpdateStateData(map[string]string{"datetime": datetime})

	msg := tgbotapi.NewMessage(chatID, confirmationText(c.serviceTitle(ctx, serviceID), datetime))
	msg.ReplyMarkup = keyboards.ConfirmBooking()
	_, _ = ctx.Bot().Send(msg)
}

// ConfirmBooking handles the confirm_booking callback and creates the record
// on "yes".
func (c *Commands) ConfirmBooking(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID
	answer := callback.Value(ctx.Update().CallbackQuery.Data)
	c.answerCallback(ctx)

	if answer != "yes" {
		_ = ctx.UpdateState("main_menu", nil)
		msg := tgbotapi.NewMessage(chatID, texts.BookingCancelled)
		msg.ReplyMarkup = keyboards.MainMenu()
		_, _ = ctx.Bot().Send(msg)
		return
	}

	account, ok := ctxman.Get[*structs.User](ctx.Context, ctxman.UserCtx{})
	if !ok {
		c.logger.Error(ctx.Context, "account not found for booking")
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BookingFailed))
		return
	}

	serviceID := c.stateServiceID(ctx)
	datetime, err := ctx.GetStateData("datetime")
	if serviceID == 0 || err != nil || datetime == "" {
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BookingFailed))
		return
	}

	record, err := c.bookingSvc.Book(ctx.Context, *account, serviceID, datetime)
	if err != nil {
		c.logger.Error(ctx.Context, "->bookingSvc.Book", zap.Error(err))
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.BookingFailed))
		return
	}

	c.logger.Info(ctx.Context, "booking created",
		zap.Int64("record_id", record.RecordID), zap.Int64("user_tgid", chatID))

	_ = ctx.UpdateState("main_menu", nil)
	msg := tgbotapi.NewMessage(chatID, texts.BookingDone)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, _ = ctx.Bot().Send(msg)
}

// PriceList renders the service catalogue with prices.
func (c *Commands) PriceList(ctx *tgrouter.Ctx) {
	chatID := ctx.Update().FromChat().ID

	services, err := c.bookingSvc.PriceList(ctx.Context)
	if err != nil || len(services) == 0 {
		if err != nil {
			c.logger.Error(ctx.Context, "->bookingSvc.PriceList", zap.Error(err))
		}
		_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, texts.PricesUnavailable))
		return
	}

	var b strings.Builder
	b.WriteString("💰 Наши услуги:\n\n")
	for _, svc := range services {
		if svc.PriceMin == svc.PriceMax {
			fmt.Fprintf(&b, "• %s — %.0f ₽\n", svc.Title, svc.PriceMin)
		} else {
			fmt.Fprintf(&b, "• %s — %.0f-%.0f ₽\n", svc.Title, svc.PriceMin, svc.PriceMax)
		}
	}

	_, _ = ctx.Bot().Send(tgbotapi.NewMessage(chatID, b.String()))
}

// serviceTitle resolves the title from the cached catalogue, falling back to
// the bare id when the catalogue cannot be loaded.
func (c *Commands) serviceTitle(ctx *tgrouter.Ctx, serviceID int64) string {
	services, err := c.bookingSvc.BookableServices(ctx.Context)
	if err != nil {
		c.logger.Error(ctx.Context, "->bookingSvc.BookableServices", zap.Error(err))
		return fmt.Sprintf("услуга #%d", serviceID)
	}
	for _, svc := range services {
		if svc.ID == serviceID {
			return svc.Title
		}
	}
	return fmt.Sprintf("услуга #%d", serviceID)
}

func confirmationText(title, datetime string) string {
	date, clock := datetime, ""
	if t, err := time.Parse(time.RFC3339, datetime); err == nil {
		date = t.Format("02.01.2006")
		clock = t.Format("15:04")
	}
	return fmt.Sprintf(texts.ConfirmBooking, title, date, clock)
}

func (c *Commands) stateServiceID(ctx *tgrouter.Ctx) int64 {
	raw, err := ctx.GetStateData("service_id")
	if err != nil {
		c.logger.Error(ctx.Context, "service_id missing from state", zap.Error(err))
		return 0
	}
	return cast.ToInt64(raw)
}

func (c *Commands) answerCallback(ctx *tgrouter.Ctx) {
	cb := tgbotapi.NewCallback(ctx.Update().CallbackQuery.ID, "")
	_, _ = ctx.Bot().Request(cb)
}
