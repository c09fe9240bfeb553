package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesTableSubscribers(t *testing.T) {
	hub := NewHub()
	orders, cancel := hub.OnChange("orders", 10)
	defer cancel()
	tables, cancelTables := hub.OnChange("tables", 10)
	defer cancelTables()

	hub.Publish(Event{Table: "orders", Action: ActionInsert, ID: 7})

	got := <-orders
	assert.Equal(t, Event{Table: "orders", Action: ActionInsert, ID: 7}, got)
	assert.Empty(t, tables)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.OnChange("orders", 1)

	cancel()
	_, open := <-ch
	assert.False(t, open)

	// publishing after unsubscribe is a no-op
	hub.Publish(Event{Table: "orders", Action: ActionUpdate, ID: 1})

	// cancel is idempotent
	cancel()
}

func TestPublishDropsWhenSubscriberIsBehind(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.OnChange("ingredients", 1)
	defer cancel()

	// second publish must not block even though the buffer is full
	hub.Publish(Event{Table: "ingredients", Action: ActionUpdate, ID: 1})
	hub.Publish(Event{Table: "ingredients", Action: ActionUpdate, ID: 2})

	got := <-ch
	assert.Equal(t, uint(1), got.ID)
	assert.Empty(t, ch)
}
