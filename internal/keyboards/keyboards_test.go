package keyboards

import (
	"testing"

	"salonbot/internal/yclients"
	"salonbot/pkg/tgrouter/callback"
)

func TestServicesCarriesServiceID(t *testing.T) {
	markup := Services([]yclients.BookableService{
		{ID: 42, Title: "Маникюр"},
		{ID: 43, Title: "Педикюр"},
	})

	if len(markup.InlineKeyboard) != 2 {
		t.Fatalf("rows = %d", len(markup.InlineKeyboard))
	}
	button := markup.InlineKeyboard[0][0]
	if button.Text != "Маникюр" {
		t.Fatalf("button text = %q", button.Text)
	}
	if callback.Query(*button.CallbackData) != "book_service" {
		t.Fatalf("callback query = %q", callback.Query(*button.CallbackData))
	}
	if callback.Value(*button.CallbackData) != "42" {
		t.Fatalf("callback value = %q", callback.Value(*button.CallbackData))
	}
}

func TestDatesRowsOfThree(t *testing.T) {
	dates := []string{
		"2026-09-01", "2026-09-02", "2026-09-03",
		"2026-09-04", "2026-09-05", "2026-09-06",
		"2026-09-07",
	}
	markup := Dates(dates)

	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d", len(markup.InlineKeyboard))
	}
	if len(markup.InlineKeyboard[0]) != 3 || len(markup.InlineKeyboard[2]) != 1 {
		t.Fatalf("row sizes = %d/%d", len(markup.InlineKeyboard[0]), len(markup.InlineKeyboard[2]))
	}
	last := markup.InlineKeyboard[2][0]
	if callback.Value(*last.CallbackData) != "2026-09-07" {
		t.Fatalf("last date = %q", callback.Value(*last.CallbackData))
	}
}

func TestConfirmBookingYesNo(t *testing.T) {
	markup := ConfirmBooking()

	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 2 {
		t.Fatalf("layout = %v", markup.InlineKeyboard)
	}
	for i, want := range []string{"yes", "no"} {
		button := markup.InlineKeyboard[0][i]
		if callback.Query(*button.CallbackData) != "confirm_booking" {
			t.Fatalf("callback query = %q", callback.Query(*button.CallbackData))
		}
		if callback.Value(*button.CallbackData) != want {
			t.Fatalf("callback value = %q, want %q", callback.Value(*button.CallbackData), want)
		}
	}
}

func TestTimesShowTimeCarryDatetime(t *testing.T) {
	markup := Times([]yclients.Seance{
		{Time: "10:00", Datetime: "2026-09-01T10:00:00+03:00"},
		{Time: "11:00", Datetime: "2026-09-01T11:00:00+03:00"},
	})

	if len(markup.InlineKeyboard) != 1 || len(markup.InlineKeyboard[0]) != 2 {
		t.Fatalf("layout = %v", markup.InlineKeyboard)
	}
	button := markup.InlineKeyboard[0][0]
	if button.Text != "10:00" {
		t.Fatalf("button text = %q", button.Text)
	}
	if callback.Query(*button.CallbackData) != "book_time" {
		t.Fatalf("callback query = %q", callback.Query(*button.CallbackData))
	}
	if callback.Value(*button.CallbackData) != "2026-09-01T10:00:00+03:00" {
		t.Fatalf("callback value = %q", callback.Value(*button.CallbackData))
	}
}
