package pkg

import (
	"go.uber.org/fx"

	"salonbot/pkg/config"
	"salonbot/pkg/db"
	"salonbot/pkg/logger"
	"salonbot/pkg/migration"
	"salonbot/pkg/redis"
	"salonbot/pkg/repository"
	"salonbot/pkg/tgrouter"
)

var Module = fx.Options(
	config.Module,
	logger.Module,
	migration.Module,
	repository.Module,
	db.Module,
	tgrouter.Module,
	redis.Module,
)
