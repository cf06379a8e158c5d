// Package notify keeps the ordered toast list. Each toast carries its own
// auto-dismiss timer; Close cancels every timer so nothing fires against a
// torn-down instance.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast for display.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Toast is one visible notification.
type Toast struct {
	ID      string
	Message string
	Level   Level
}

// Toaster manages the toast list. Toasts dismiss themselves after the TTL, or
// earlier by identity via Dismiss.
type Toaster struct {
	mu     sync.Mutex
	ttl    time.Duration
	toasts []Toast
	timers map[string]*time.Timer
	closed bool
}

// NewToaster creates a toaster with the given auto-dismiss delay.
func NewToaster(ttl time.Duration) *Toaster {
	return &Toaster{
		ttl:    ttl,
		timers: make(map[string]*time.Timer),
	}
}

// Push appends a toast and arms its dismissal timer. Returns the toast id.
func (t *Toaster) Push(message string, level Level) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ""
	}
	id := uuid.NewString()
	t.toasts = append(t.toasts, Toast{ID: id, Message: message, Level: level})
	t.timers[id] = time.AfterFunc(t.ttl, func() { t.Dismiss(id) })
	return id
}

// Dismiss removes a toast by identity. Unknown ids are ignored.
func (t *Toaster) Dismiss(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
	for i, toast := range t.toasts {
		if toast.ID == id {
			t.toasts = append(t.toasts[:i], t.toasts[i+1:]...)
			break
		}
	}
}

// Active returns the current toasts in display order.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Toast(nil), t.toasts...)
}

// Close cancels all pending timers and drops the list. Pushes after Close are
// ignored.
func (t *Toaster) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
	t.toasts = nil
}
