package bot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// telegramStub answers every Bot API method with ok and records the texts
// passed to sendMessage.
type telegramStub struct {
	mu    sync.Mutex
	texts []string
}

func (s *telegramStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/sendMessage") {
		s.mu.Lock()
		s.texts = append(s.texts, r.FormValue("text"))
		s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":1,"type":"private"}}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
}

func TestRouterHandler_RepliesThroughBot(t *testing.T) {
	stub := &telegramStub{}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	tg, err := tbot.New("123:test",
		tbot.WithServerURL(srv.URL),
		tbot.WithSkipGetMe(),
	)
	require.NoError(t, err)

	r := newTestRouter(&fakeQuerier{}, nil)
	handler := r.Handler()

	handler(context.Background(), tg, textUpdate(1, "Ana", "/mabar"))
	handler(context.Background(), tg, &models.Update{})

	stub.mu.Lock()
	defer stub.mu.Unlock()
	assert.Equal(t, []string{"Baik, silahkan invite saya. Ini ID saya: 9398489263."}, stub.texts)
}
