package ai

import (
	"github.com/j0lvera/ucupbot/internal/bot"
	"github.com/j0lvera/ucupbot/internal/config"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Params for creating an AI service
type Params struct {
	fx.In

	Config *config.Config
	Logger zerolog.Logger
}

// Result of creating an AI service
type Result struct {
	fx.Out

	Querier bot.Querier
}

// New creates a new AI service based on configuration
func New(p Params) (Result, error) {
	client, err := NewGroqClient(p.Config.APIKey, p.Config.BaseURL, p.Config.Model)
	if err != nil {
		return Result{}, err
	}

	log := p.Logger.With().Str("module", "ai").Str("model", p.Config.Model).Logger()

	return Result{
		Querier: NewService(client, p.Config.Messages.AIFailure, &log),
	}, nil
}

// Module provides the AI service
func Module() fx.Option {
	return fx.Module(
		"ai",
		fx.Provide(
			New,
		),
	)
}
