package main

import (
	"salonbot/apps/bot"
	"salonbot/internal"
	"salonbot/pkg"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		pkg.Module,
		internal.Module,
		bot.Module,
	).Run()
}
