package telemetry

import (
	"sync"
	"time"

	"github.com/GOFONCK/VPN-Landing-STEALTHNET/api/internal/core/domain"
)

// Event tells open admin panels that a document changed and previews should reload.
type Event struct {
	Kind domain.ChangeKind `json:"kind"`
	At   time.Time         `json:"at"`
}

// Hub fans change events out to every connected admin panel.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
	now         func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
		now:         time.Now,
	}
}

// Subscribe registers a new listener.
func (h *Hub) Subscribe() chan Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 16) // Buffer so a slow browser never blocks a save
	h.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes ch. Calling it twice is harmless.
func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[ch]; ok {
		delete(h.subscribers, ch)
		close(ch)
	}
}

// Publish implements domain.ChangeNotifier.
func (h *Hub) Publish(kind domain.ChangeKind) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ev := Event{Kind: kind, At: h.now()}
	for ch := range h.subscribers {
		select {
		case ch <- ev:
		default: // Drop if the buffer is full; the next event triggers the same reload
		}
	}
}

// Subscribers reports the number of open listeners.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
