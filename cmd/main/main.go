package main

import (
	"github.com/j0lvera/ucupbot/internal/ai"
	"github.com/j0lvera/ucupbot/internal/bot"
	"github.com/j0lvera/ucupbot/internal/config"
	"github.com/j0lvera/ucupbot/internal/db"
	"github.com/j0lvera/ucupbot/internal/log"
	"go.uber.org/fx"
)

// modules is the full application graph.
func modules() fx.Option {
	return fx.Options(
		fx.WithLogger(log.EventLogger),
		config.Module(),
		log.Module(),
		ai.Module(),
		db.Module(),
		bot.Module(),
	)
}

func main() {

	fx.New(
		modules(),
	).Run()
}
