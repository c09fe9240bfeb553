// Package notify is the change-notification feed: every repository write
// publishes an event for its logical table, and interested views subscribe
// to decide their own reload granularity.
package notify

import "sync"

// Event describes a single insert/update/delete on a logical table.
type Event struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     uint   `json:"id,omitempty"`
}

const (
	ActionInsert = "insert"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]struct{})}
}

// OnChange subscribes to events for one logical table. The returned
// function removes the subscription; the channel is closed on unsubscribe.
func (h *Hub) OnChange(table string, buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)

	h.mu.Lock()
	if h.subs[table] == nil {
		h.subs[table] = make(map[chan Event]struct{})
	}
	h.subs[table][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[table], ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of its table. Delivery is
// non-blocking: an event is only a reload hint, so a subscriber that has
// fallen behind simply misses it.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[e.Table] {
		select {
		case ch <- e:
		default:
		}
	}
}
