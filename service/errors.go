package service

import "errors"

var (
	ErrTableOccupied   = errors.New("table is occupied")
	ErrNoActiveSession = errors.New("no active session for this table")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrInvalidPayment  = errors.New("unknown payment method")
)
