package service

import (
	"testing"

	"github.com/mahidrahman375/coffee-shop/models"

	"github.com/stretchr/testify/assert"
)

var (
	cartLatte    = models.MenuItem{ID: 1, Name: "Latte", Price: 4.00}
	cartEspresso = models.MenuItem{ID: 2, Name: "Espresso", Price: 2.50}
)

func TestCartAddMergesExistingLine(t *testing.T) {
	cart := NewCart()
	cart.Add(cartLatte)
	cart.Add(cartEspresso)
	cart.Add(cartLatte)

	lines := cart.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
	assert.Equal(t, 10.50, cart.Total())
}

func TestCartUpdateQuantityClampsAtOne(t *testing.T) {
	cart := NewCart()
	cart.Add(cartLatte)

	cart.UpdateQuantity(cartLatte.ID, 2)
	assert.Equal(t, 3, cart.Lines()[0].Quantity)

	cart.UpdateQuantity(cartLatte.ID, -2)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	// a decrement that would reach 0 is a no-op
	cart.UpdateQuantity(cartLatte.ID, -1)
	assert.Equal(t, 1, cart.Lines()[0].Quantity)

	// unknown item is ignored
	cart.UpdateQuantity(99, 1)
	assert.Len(t, cart.Lines(), 1)
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	cart.Add(cartLatte)
	cart.Add(cartEspresso)

	cart.Remove(cartLatte.ID)
	lines := cart.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, cartEspresso.ID, lines[0].MenuItem.ID)

	cart.Remove(cartEspresso.ID)
	assert.True(t, cart.Empty())
	assert.Equal(t, 0.0, cart.Total())
}
