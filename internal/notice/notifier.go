// Package notice runs the timed toast and copy-acknowledgment state of a
// form. Every piece of state reverts on its own after a fixed duration.
package notice

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Toast is a transient notice.
type Toast struct {
	ID      string
	Message string
}

type ack struct {
	id    string
	timer *time.Timer
}

// Notifier tracks one toast and any number of acknowledged copy targets.
//
// Showing a toast replaces the current one and restarts its timer. Each
// toast and acknowledgment has a uuid so a timer that fires late never
// clears newer state. onChange is called, without locks held, after every
// visible change including timed reverts.
type Notifier struct {
	mu            sync.Mutex
	toastDuration time.Duration
	ackDuration   time.Duration
	toast         Toast
	toastTimer    *time.Timer
	acks          map[string]ack
	onChange      func()
	stopped       bool
}

// New creates a Notifier. A nil onChange is allowed.
func New(toastDuration, ackDuration time.Duration, onChange func()) *Notifier {
	if onChange == nil {
		onChange = func() {}
	}
	return &Notifier{
		toastDuration: toastDuration,
		ackDuration:   ackDuration,
		acks:          make(map[string]ack),
		onChange:      onChange,
	}
}

// Show displays message, replacing any current toast, and returns its id.
func (n *Notifier) Show(message string) string {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return ""
	}
	if n.toastTimer != nil {
		n.toastTimer.Stop()
	}
	id := uuid.NewString()
	n.toast = Toast{ID: id, Message: message}
	n.toastTimer = time.AfterFunc(n.toastDuration, func() { n.hide(id) })
	n.mu.Unlock()

	n.onChange()
	return id
}

// hide clears the toast if it is still the one identified by id.
func (n *Notifier) hide(id string) {
	n.mu.Lock()
	if n.toast.ID != id {
		n.mu.Unlock()
		return
	}
	n.toast = Toast{}
	n.toastTimer = nil
	n.mu.Unlock()

	n.onChange()
}

// Current returns the visible toast, or the zero Toast.
func (n *Notifier) Current() Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.toast
}

// Acknowledge marks target as copied until the acknowledgment duration
// passes. It returns false, and changes nothing, if target is already
// acknowledged; an acknowledged trigger is disabled.
func (n *Notifier) Acknowledge(target string) bool {
	n.mu.Lock()
	if n.stopped {
		n.mu.Unlock()
		return false
	}
	if _, busy := n.acks[target]; busy {
		n.mu.Unlock()
		return false
	}
	id := uuid.NewString()
	n.acks[target] = ack{
		id:    id,
		timer: time.AfterFunc(n.ackDuration, func() { n.revert(target, id) }),
	}
	n.mu.Unlock()

	n.onChange()
	return true
}

// revert ends an acknowledgment if it is still the one identified by id.
func (n *Notifier) revert(target, id string) {
	n.mu.Lock()
	a, ok := n.acks[target]
	if !ok || a.id != id {
		n.mu.Unlock()
		return
	}
	delete(n.acks, target)
	n.mu.Unlock()

	n.onChange()
}

// IsAcknowledged reports whether target currently shows "Copied!".
func (n *Notifier) IsAcknowledged(target string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.acks[target]
	return ok
}

// Acknowledged returns the acknowledged targets, sorted.
func (n *Notifier) Acknowledged() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]string, 0, len(n.acks))
	for target := range n.acks {
		out = append(out, target)
	}
	sort.Strings(out)
	return out
}

// Stop cancels every pending timer and clears all state. Later calls to
// Show and Acknowledge are ignored. onChange is not called.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopped = true
	if n.toastTimer != nil {
		n.toastTimer.Stop()
		n.toastTimer = nil
	}
	n.toast = Toast{}
	for target, a := range n.acks {
		a.timer.Stop()
		delete(n.acks, target)
	}
}
