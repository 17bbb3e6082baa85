package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/j0lvera/ucupbot/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Config   *config.Config
	Querier  Querier
	Recorder ActivityRecorder `optional:"true"`
}

type Result struct {
	fx.Out

	Bot    *tbot.Bot
	Router *Router
}

func New(lc fx.Lifecycle, p Params, log zerolog.Logger) (Result, error) {
	routerLog := log.With().Str("module", "bot").Logger()
	router := NewRouter(p.Config.Messages, p.Querier, p.Recorder, &routerLog)

	opts := []tbot.Option{
		tbot.WithDefaultHandler(router.Handler()),
		tbot.WithErrorsHandler(
			func(err error) {
				routerLog.Error().Err(err).Msg("telegram polling error")
			},
		),
	}

	// New calls getMe, so a bad token fails here before polling starts.
	tg, err := tbot.New(p.Config.Token, opts...)
	if err != nil {
		return Result{}, err
	}

	pollCtx, cancel := context.WithCancel(context.Background())

	lc.Append(
		fx.Hook{
			OnStart: func(ctx context.Context) error {
				if _, err := tg.SetMyCommands(ctx, &tbot.SetMyCommandsParams{
					Commands: BotCommands(),
				}); err != nil {
					routerLog.Warn().Err(err).Msg("unable to publish command menu")
				}

				log.Info().Msg("bot is running...")
				go tg.Start(pollCtx)
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.Info().Msg("stopping telegram bot...")
				cancel()
				return nil
			},
		},
	)

	return Result{
		Bot:    tg,
		Router: router,
	}, nil
}

func Module() fx.Option {
	return fx.Module(
		"bot",
		fx.Provide(
			New,
		),
		fx.Invoke(
			func(bot *tbot.Bot) {},
		),
	)
}
