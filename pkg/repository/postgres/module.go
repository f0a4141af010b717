package postgres

import (
	messageRepo "salonbot/pkg/repository/postgres/messages_repo"
	userRepo "salonbot/pkg/repository/postgres/users_repo"

	"go.uber.org/fx"
)

var Module = fx.Options(
	userRepo.Module,
	messageRepo.Module,
)
