// Package step keeps one deferred continuation per conversation: the next
// message from that conversation is handed to it instead of normal dispatch.
package step

import (
	"context"
	"sync"
)

// Continuation handles the next message of a conversation.
type Continuation[M any] func(ctx context.Context, msg M)

// Register manages pending continuations for multiple conversations.
// Each conversation holds at most one; arming again replaces it.
type Register[M any] struct {
	pending map[int64]Continuation[M]
	mu      sync.Mutex
}

// New creates an empty register
func New[M any]() *Register[M] {
	return &Register[M]{
		pending: make(map[int64]Continuation[M]),
	}
}

// Arm installs fn as the continuation for conversationID, replacing any
// previous one.
func (r *Register[M]) Arm(conversationID int64, fn Continuation[M]) {
	if fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending[conversationID] = fn
}

// Consume removes the continuation for conversationID and runs it with msg.
// It reports whether a continuation was armed. The continuation runs outside
// the lock so it may arm a new step for the same conversation.
func (r *Register[M]) Consume(ctx context.Context, conversationID int64, msg M) bool {
	fn, ok := r.take(conversationID)
	if !ok {
		return false
	}

	fn(ctx, msg)
	return true
}

func (r *Register[M]) take(conversationID int64) (Continuation[M], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn, ok := r.pending[conversationID]
	if ok {
		delete(r.pending, conversationID)
	}
	return fn, ok
}

// Cancel drops the continuation for conversationID without running it.
func (r *Register[M]) Cancel(conversationID int64) bool {
	_, ok := r.take(conversationID)
	return ok
}

// Pending reports whether conversationID has an armed continuation.
func (r *Register[M]) Pending(conversationID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.pending[conversationID]
	return ok
}

// Len returns the number of armed continuations
func (r *Register[M]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.pending)
}
