package notify

import (
	"sync"
	"time"
)

// Kind flavors a notification for display
type Kind int

const (
	KindSuccess Kind = iota
	KindFailure
)

// Message is one user-facing notification
type Message struct {
	Kind Kind
	Text string
}

// Notifier is a single-slot, auto-expiring message channel. Setting a
// new message displaces the old one; each message clears itself after
// the TTL unless something replaced it first.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Message
	gen     uint64
	onSet   func(Message)
}

// New creates a notifier. ttl <= 0 falls back to 5 seconds.
func New(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Notifier{ttl: ttl}
}

// OnSet registers a listener called for every new message; the render
// layer uses it to repaint. Called without the notifier's lock held.
func (n *Notifier) OnSet(fn func(Message)) {
	n.mu.Lock()
	n.onSet = fn
	n.mu.Unlock()
}

// Success posts a success message
func (n *Notifier) Success(text string) {
	n.set(Message{Kind: KindSuccess, Text: text})
}

// Failure posts a failure message
func (n *Notifier) Failure(text string) {
	n.set(Message{Kind: KindFailure, Text: text})
}

// Current returns the visible message, if any
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Message{}, false
	}
	return *n.current, true
}

// Clear dismisses the visible message
func (n *Notifier) Clear() {
	n.mu.Lock()
	n.current = nil
	n.gen++
	n.mu.Unlock()
}

func (n *Notifier) set(msg Message) {
	n.mu.Lock()
	n.current = &msg
	n.gen++
	gen := n.gen
	onSet := n.onSet
	n.mu.Unlock()

	if onSet != nil {
		onSet(msg)
	}

	// The generation check keeps an expiring timer from clearing a
	// message that replaced the one it was armed for.
	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		if n.gen == gen {
			n.current = nil
		}
		n.mu.Unlock()
	})
}
