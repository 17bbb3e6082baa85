package ai

import (
	"context"

	"github.com/rs/zerolog"
)

// Completer is satisfied by *Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (Completion, error)
}

// Service implements the bot.Querier interface
type Service struct {
	completer Completer
	failure   string
	log       *zerolog.Logger
}

// NewService returns a Service that answers with failure whenever the
// provider call does not succeed.
func NewService(c Completer, failure string, log *zerolog.Logger) *Service {
	return &Service{
		completer: c,
		failure:   failure,
		log:       log,
	}
}

// Query implements the bot.Querier interface
func (s *Service) Query(ctx context.Context, prompt string) string {
	s.log.Debug().Int("prompt_length", len(prompt)).Msg("ai request sending")

	result, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("error calling groq api")
		return s.failure
	}

	s.log.Debug().
		Int("response_length", len(result.Content)).
		Int("input_tokens", result.InputTokens).
		Int("output_tokens", result.OutputTokens).
		Int("total_tokens", result.TotalTokens).
		Msg("ai response received")

	return result.Content
}
