package models

import "time"

// OrderStatus represents all possible states of a table order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus is tracked independently of the order status: a customer
// selects a payment method while the order is still pending, staff flip
// it to paid when they confirm.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "cash"
	PaymentCard          PaymentMethod = "card"
	PaymentMobileBanking PaymentMethod = "mobile_banking"
)

// Valid reports whether the method is one the venue accepts.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobileBanking:
		return true
	}
	return false
}

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	TableID       uint          `json:"table_id" gorm:"not null"`
	Table         Table         `json:"table,omitempty" gorm:"foreignKey:TableID"`
	CustomerID    *uint         `json:"customer_id"`
	Customer      *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Details       []OrderDetail `json:"details,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type OrderDetail struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot price at time of order
	Subtotal   float64  `json:"subtotal" gorm:"not null"`
}
