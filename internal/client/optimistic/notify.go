// Package optimistic keeps per-view in-memory lists responsive despite
// network latency: a mutation is applied locally first, then reconciled with
// the gateway response, rolling the local change back on failure.
package optimistic

import (
	"sync"
	"time"
)

// Level classifies a notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notification is a transient, dismissable message for the user. This is
// the only error channel of the mutation layer; failures are never silent
// and never fatal.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier is a UI-agnostic queue of pending notifications. The mutation
// coordinator writes to it, the view layer drains it.
type Notifier struct {
	mu    sync.Mutex
	queue []Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) push(level Level, msg string) {
	n.mu.Lock()
	n.queue = append(n.queue, Notification{Level: level, Message: msg, At: time.Now()})
	n.mu.Unlock()
}

func (n *Notifier) Info(msg string) {
	n.push(LevelInfo, msg)
}

func (n *Notifier) Error(msg string) {
	n.push(LevelError, msg)
}

// Drain returns all pending notifications and empties the queue.
func (n *Notifier) Drain() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.queue
	n.queue = nil
	return out
}

// Len reports the number of pending notifications.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.queue)
}
