package keyboards

import (
	"fmt"

	"salonbot/internal/texts"
	"salonbot/internal/yclients"
	"salonbot/pkg/tgrouter/callback"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func MainMenu() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(texts.BookingButton),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(texts.PricesButton),
			tgbotapi.NewKeyboardButton(texts.FAQButton),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(texts.ContactsButton),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func ShareContact() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonContact(texts.ShareContactButton),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = true

	return keyboard
}

// Services renders one inline button per bookable service, the service id
// riding in the callback payload.
func Services(services []yclients.BookableService) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(services))
	for _, svc := range services {
		data := callback.CallbackData{Query: "book_service", Value: fmt.Sprintf("%d", svc.ID)}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(svc.Title, data.String()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func Dates(dates []string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(dates)+2)/3)
	var row []tgbotapi.InlineKeyboardButton
	for _, date := range dates {
		data := callback.CallbackData{Query: "book_date", Value: date}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(date, data.String()))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func ConfirmBooking() tgbotapi.InlineKeyboardMarkup {
	yes := callback.CallbackData{Query: "confirm_booking", Value: "yes"}
	no := callback.CallbackData{Query: "confirm_booking", Value: "no"}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(texts.ConfirmButton, yes.String()),
			tgbotapi.NewInlineKeyboardButtonData(texts.CancelBookingButton, no.String()),
		),
	)
}

func Times(seances []yclients.Seance) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, (len(seances)+3)/4)
	var row []tgbotapi.InlineKeyboardButton
	for _, seance := range seances {
		data := callback.CallbackData{Query: "book_time", Value: seance.Datetime}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(seance.Time, data.String()))
		if len(row) == 4 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
