package internal

import (
	"salonbot/internal/assistant"
	"salonbot/internal/booking"
	"salonbot/internal/user"
	"salonbot/internal/yclients"

	"go.uber.org/fx"
)

var Module = fx.Options(
	yclients.Module,
	user.Module,
	booking.Module,
	assistant.Module,
)
