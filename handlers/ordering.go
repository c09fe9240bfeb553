package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderingHandler adapts the customer ordering workflow to HTTP.
type OrderingHandler struct {
	svc *service.Ordering
}

func NewOrderingHandler(svc *service.Ordering) *OrderingHandler {
	return &OrderingHandler{svc: svc}
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// SelectTable opens a session for a free table, rebuilding any existing cart
func (h *OrderingHandler) SelectTable(c *gin.Context) {
	tableID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	cart, err := h.svc.SelectTable(tableID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Table selected", "table_id": tableID, "cart": cart})
	case errors.Is(err, service.ErrTableOccupied):
		c.JSON(http.StatusConflict, gin.H{"error": "Table is occupied"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select table"})
	}
}

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
}

// AddToCart adds one unit of a menu item to the table's cart
func (h *OrderingHandler) AddToCart(c *gin.Context) {
	tableID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.svc.AddToCart(tableID, req.MenuItemID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	case errors.Is(err, service.ErrNoActiveSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a table first"})
	case errors.Is(err, service.ErrItemUnavailable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item is not available"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
	}
}

type UpdateCartItemRequest struct {
	Change int `json:"change" binding:"required"`
}

// UpdateCartItem applies a +/- quantity delta to a cart line
func (h *OrderingHandler) UpdateCartItem(c *gin.Context) {
	tableID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.svc.UpdateQuantity(tableID, itemID, req.Change)
	if errors.Is(err, service.ErrNoActiveSession) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a table first"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// RemoveCartItem drops a cart line
func (h *OrderingHandler) RemoveCartItem(c *gin.Context) {
	tableID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := uintParam(c, "itemId")
	if !ok {
		return
	}

	cart, err := h.svc.RemoveFromCart(tableID, itemID)
	if errors.Is(err, service.ErrNoActiveSession) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a table first"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// GetCart returns the table's current cart with its running total
func (h *OrderingHandler) GetCart(c *gin.Context) {
	tableID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	cart, total, err := h.svc.Cart(tableID)
	if errors.Is(err, service.ErrNoActiveSession) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a table first"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "total": total})
}

type PlaceOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// PlaceOrder writes the cart out as an order and returns the full summary
func (h *OrderingHandler) PlaceOrder(c *gin.Context) {
	tableID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req PlaceOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var customer *service.CustomerInfo
	if req.CustomerName != "" {
		customer = &service.CustomerInfo{Name: req.CustomerName, Phone: req.CustomerPhone}
	}

	order, err := h.svc.PlaceOrder(tableID, customer)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	case errors.Is(err, service.ErrNoActiveSession):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Select a table first"})
	case errors.Is(err, service.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
	}
}

type SelectPaymentMethodRequest struct {
	Method models.PaymentMethod `json:"method" binding:"required,oneof=cash card mobile_banking"`
}

// SelectPaymentMethod records the guest's payment choice; staff confirm later
func (h *OrderingHandler) SelectPaymentMethod(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req SelectPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.SelectPaymentMethod(orderID, req.Method)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message":  "Payment method selected. Please wait for confirmation from staff.",
			"order_id": orderID,
			"method":   req.Method,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, service.ErrInvalidPayment):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select payment method"})
	}
}
