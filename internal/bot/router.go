package bot

import (
	"context"
	"fmt"
	"strings"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/j0lvera/ucupbot/internal/config"
	"github.com/j0lvera/ucupbot/internal/step"
	"github.com/rs/zerolog"
)

type handlerFunc func(ctx context.Context, s Sender, msg Incoming)

// Router dispatches inbound messages to command handlers, the pending AI
// step, or the echo fallback.
type Router struct {
	messages config.Messages
	querier  Querier
	recorder ActivityRecorder
	steps    *step.Register[Incoming]
	log      *zerolog.Logger

	commands map[Command]handlerFunc
}

// NewRouter builds the dispatch table. A nil recorder disables the journal.
func NewRouter(
	messages config.Messages,
	querier Querier,
	recorder ActivityRecorder,
	log *zerolog.Logger,
) *Router {
	if recorder == nil {
		recorder = NopRecorder
	}

	r := &Router{
		messages: messages,
		querier:  querier,
		recorder: recorder,
		steps:    step.New[Incoming](),
		log:      log,
	}

	r.commands = map[Command]handlerFunc{
		CommandStart: r.handleGreeting,
		CommandHello: r.handleGreeting,
		CommandHelp:  r.static(func(m config.Messages) string { return m.Help }),
		CommandMabar: r.static(func(m config.Messages) string { return m.Mabar }),
		CommandAbout: r.static(func(m config.Messages) string { return m.About }),
		CommandAIBot: r.handleAIBot,
	}

	return r
}

// Handler adapts the router to the telegram bot's handler signature.
func (r *Router) Handler() tbot.HandlerFunc {
	return func(ctx context.Context, tg *tbot.Bot, update *models.Update) {
		r.Handle(ctx, tg, update)
	}
}

// Steps exposes the pending step register.
func (r *Router) Steps() *step.Register[Incoming] {
	return r.steps
}

// Handle processes a single update. It never panics.
func (r *Router) Handle(ctx context.Context, s Sender, update *models.Update) {
	msg, ok := incomingFrom(update)
	if !ok {
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error().
				Err(fmt.Errorf("panic: %v", rec)).
				Int64("chat_id", msg.ChatID).
				Msg("handler panicked")
			r.sendApology(ctx, s, msg)
		}
	}()

	r.logActivity(ctx, msg)

	if r.steps.Consume(ctx, msg.ChatID, msg) {
		return
	}

	// Only text takes part in command dispatch and echo.
	if msg.Text == "" {
		return
	}

	if cmd, isCommand := ParseCommand(msg.Text); isCommand {
		if h, known := r.commands[cmd]; known {
			h(ctx, s, msg)
			return
		}
	}

	r.reply(ctx, s, msg, msg.Text)
}

func incomingFrom(update *models.Update) (Incoming, bool) {
	// Guard against nil message
	if update == nil || update.Message == nil {
		return Incoming{}, false
	}

	m := update.Message
	name := m.Chat.FirstName
	if name == "" && m.From != nil {
		name = m.From.FirstName
	}

	return Incoming{
		ChatID:    m.Chat.ID,
		MessageID: m.ID,
		Sender:    name,
		Text:      m.Text,
	}, true
}

func (r *Router) logActivity(ctx context.Context, msg Incoming) {
	r.log.Info().
		Int64("chat_id", msg.ChatID).
		Str("sender", msg.Sender).
		Str("text", msg.Text).
		Msg("message received")

	if err := r.recorder.RecordActivity(ctx, msg); err != nil {
		r.log.Warn().Err(err).Int64("chat_id", msg.ChatID).Msg("unable to record activity")
	}
}

func (r *Router) handleGreeting(ctx context.Context, s Sender, msg Incoming) {
	r.reply(ctx, s, msg, r.messages.Greet(msg.Sender))
}

func (r *Router) static(text func(config.Messages) string) handlerFunc {
	return func(ctx context.Context, s Sender, msg Incoming) {
		r.reply(ctx, s, msg, text(r.messages))
	}
}

func (r *Router) handleAIBot(ctx context.Context, s Sender, msg Incoming) {
	r.steps.Arm(msg.ChatID, func(ctx context.Context, next Incoming) {
		r.answerAI(ctx, s, next)
	})

	// The user never saw the prompt, so don't capture their next message.
	if err := r.reply(ctx, s, msg, r.messages.AIPrompt); err != nil {
		r.steps.Cancel(msg.ChatID)
		return
	}
	r.log.Debug().Int64("chat_id", msg.ChatID).Msg("ai step armed")
}

func (r *Router) answerAI(ctx context.Context, s Sender, msg Incoming) {
	// Send a "typing" action to show the bot is processing
	if _, err := s.SendChatAction(ctx, &tbot.SendChatActionParams{
		ChatID: msg.ChatID,
		Action: models.ChatActionTyping,
	}); err != nil {
		r.log.Debug().Err(err).Int64("chat_id", msg.ChatID).Msg("unable to send typing action")
	}

	// Photos, stickers and the like carry no prompt.
	if strings.TrimSpace(msg.Text) == "" {
		r.log.Warn().Int64("chat_id", msg.ChatID).Msg("ai step consumed by message without text")
		r.reply(ctx, s, msg, r.messages.AIFailure)
		return
	}

	r.reply(ctx, s, msg, r.querier.Query(ctx, msg.Text))
}

// reply answers msg with text. If sending fails the user gets the apology
// text instead and the original send error is returned.
func (r *Router) reply(ctx context.Context, s Sender, msg Incoming, text string) error {
	_, err := s.SendMessage(ctx, replyParams(msg, text))
	if err != nil {
		r.log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("error responding to message")
		r.sendApology(ctx, s, msg)
	}
	return err
}

func (r *Router) sendApology(ctx context.Context, s Sender, msg Incoming) {
	if _, err := s.SendMessage(ctx, replyParams(msg, r.messages.ReplyFailure)); err != nil {
		r.log.Error().Err(err).Int64("chat_id", msg.ChatID).Msg("unable to send apology")
	}
}

func replyParams(msg Incoming, text string) *tbot.SendMessageParams {
	return &tbot.SendMessageParams{
		ChatID: msg.ChatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: msg.MessageID,
		},
	}
}
