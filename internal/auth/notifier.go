package auth

import "sync"

// EventKind distinguishes auth state changes.
type EventKind string

// Auth state change kinds.
const (
	EventLogin  EventKind = "login"
	EventLogout EventKind = "logout"
)

// Event describes a single auth state change.
type Event struct {
	Kind   EventKind
	UserID string
	Email  string
}

// Notifier broadcasts auth state changes to registered observers. Subscribers
// own the lifetime of their registration: Subscribe returns an unsubscribe
// function which must be called when the observer goes away.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns its unsubscribe function. Unsubscribing
// twice is harmless.
func (n *Notifier) Subscribe(fn func(Event)) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Publish delivers ev to all current subscribers, synchronously.
func (n *Notifier) Publish(ev Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
