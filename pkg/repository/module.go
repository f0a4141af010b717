package repository

import (
	"go.uber.org/fx"

	"salonbot/pkg/repository/postgres"
	"salonbot/pkg/repository/state"
)

var Module = fx.Options(
	postgres.Module,
	state.Module,
)
