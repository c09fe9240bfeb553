package service

import "github.com/mahidrahman375/coffee-shop/models"

// CartLine is one menu item in the cart with its chosen quantity.
type CartLine struct {
	MenuItem models.MenuItem `json:"menu_item"`
	Quantity int             `json:"quantity"`
}

// Cart is the in-memory working set for a table before the order is
// placed. All edits are pure memory operations keyed by menu-item id;
// nothing here touches the store.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of the item in the cart, merging into an existing
// line if the item is already there.
func (c *Cart) Add(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{MenuItem: item, Quantity: 1})
}

// addLine seeds a line with an explicit quantity, used when rebuilding a
// cart from a pending order's lines.
func (c *Cart) addLine(item models.MenuItem, quantity int) {
	c.lines = append(c.lines, CartLine{MenuItem: item, Quantity: quantity})
}

// UpdateQuantity applies a delta to a line. Quantity never drops below 1;
// a decrement that would reach 0 is a no-op (removal is explicit).
func (c *Cart) UpdateQuantity(menuItemID uint, change int) {
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			if newQty := c.lines[i].Quantity + change; newQty > 0 {
				c.lines[i].Quantity = newQty
			}
			return
		}
	}
}

// Remove drops the item's line entirely.
func (c *Cart) Remove(menuItemID uint) {
	for i := range c.lines {
		if c.lines[i].MenuItem.ID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.MenuItem.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
