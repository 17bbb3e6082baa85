package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j0lvera/ucupbot/internal/bot"
)

type fakeExecer struct {
	sql  string
	args []any
	err  error
}

func (f *fakeExecer) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.sql = sql
	f.args = arguments
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func TestRecordActivity(t *testing.T) {
	exec := &fakeExecer{}
	j := NewJournal(exec)

	err := j.RecordActivity(context.Background(), bot.Incoming{
		ChatID:    42,
		MessageID: 7,
		Sender:    "Ana",
		Text:      "/start",
	})
	require.NoError(t, err)

	assert.Equal(t, insertActivity, exec.sql)
	assert.Equal(t, []any{int64(42), int64(7), "Ana", "/start"}, exec.args)
}

func TestRecordActivity_Error(t *testing.T) {
	cause := errors.New("connection refused")
	j := NewJournal(&fakeExecer{err: cause})

	err := j.RecordActivity(context.Background(), bot.Incoming{ChatID: 1, Text: "x"})
	assert.ErrorIs(t, err, cause)
}
