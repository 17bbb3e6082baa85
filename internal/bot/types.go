package bot

import (
	"context"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Incoming is the part of a Telegram message the router works with.
type Incoming struct {
	ChatID    int64
	MessageID int
	Sender    string // display name used in greetings and activity logs
	Text      string
}

// Querier answers a single free-text prompt. Implementations never fail:
// provider errors are turned into a user-facing apology.
type Querier interface {
	Query(ctx context.Context, prompt string) string
}

// Sender is the subset of *tbot.Bot used to reply.
type Sender interface {
	SendMessage(ctx context.Context, params *tbot.SendMessageParams) (*models.Message, error)
	SendChatAction(ctx context.Context, params *tbot.SendChatActionParams) (bool, error)
}

// ActivityRecorder persists inbound activity.
type ActivityRecorder interface {
	RecordActivity(ctx context.Context, msg Incoming) error
}

type nopRecorder struct{}

func (nopRecorder) RecordActivity(context.Context, Incoming) error { return nil }

// NopRecorder discards activity.
var NopRecorder ActivityRecorder = nopRecorder{}
