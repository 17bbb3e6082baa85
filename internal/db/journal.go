package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/j0lvera/ucupbot/internal/bot"
)

const createActivityLog = `
CREATE TABLE IF NOT EXISTS activity_log (
	id          BIGSERIAL PRIMARY KEY,
	chat_id     BIGINT      NOT NULL,
	message_id  BIGINT      NOT NULL,
	sender      TEXT        NOT NULL,
	text        TEXT        NOT NULL,
	received_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertActivity = `
INSERT INTO activity_log (chat_id, message_id, sender, text)
VALUES ($1, $2, $3, $4)`

// Migrate creates the activity_log table if needed.
func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.Pool.Exec(ctx, createActivityLog); err != nil {
		return fmt.Errorf("unable to create activity_log: %w", err)
	}
	return nil
}

// Execer is the part of *pgxpool.Pool the journal writes through.
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// Journal implements bot.ActivityRecorder on top of Postgres.
type Journal struct {
	db Execer
}

func NewJournal(db Execer) *Journal {
	return &Journal{db: db}
}

// RecordActivity implements bot.ActivityRecorder
func (j *Journal) RecordActivity(ctx context.Context, msg bot.Incoming) error {
	args := activityArgs(msg)
	if _, err := j.db.Exec(ctx, insertActivity, args...); err != nil {
		return fmt.Errorf("unable to insert activity: %w", err)
	}
	return nil
}

func activityArgs(msg bot.Incoming) []any {
	return []any{msg.ChatID, int64(msg.MessageID), msg.Sender, msg.Text}
}
