package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mahidrahman375/coffee-shop/logger"
	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/notify"
	"github.com/mahidrahman375/coffee-shop/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler adapts the staff workflow to HTTP: order review, payment
// confirmation, cancellation and stock edits, plus the change feed.
type AdminHandler struct {
	svc *service.Admin
	hub *notify.Hub
}

func NewAdminHandler(svc *service.Admin, hub *notify.Hub) *AdminHandler {
	return &AdminHandler{svc: svc, hub: hub}
}

// ListOrders returns all orders with the dashboard summary
func (h *AdminHandler) ListOrders(c *gin.Context) {
	overview, err := h.svc.ListOrders(models.OrderStatus(c.Query("status")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":         len(overview.Orders),
		"order_summary": overview.Summary,
		"total_revenue": overview.TotalRevenue,
		"orders":        overview.Orders,
	})
}

type OrderActionRequest struct {
	TableID uint `json:"table_id" binding:"required"`
}

// ConfirmPayment marks an order paid and completed and frees its table
func (h *AdminHandler) ConfirmPayment(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req OrderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.ConfirmPayment(orderID, req.TableID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed and table freed", "order_id": orderID})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot confirm payment", "reason": err.Error()})
	}
}

// CancelOrder restores ingredient stock, cancels the order and frees the
// table. Operator confirmation happens in the admin UI before this call.
func (h *AdminHandler) CancelOrder(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req OrderActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.CancelOrder(orderID, req.TableID)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Order cancelled and ingredients restored", "order_id": orderID})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cannot cancel order", "reason": err.Error()})
	}
}

// ListIngredients returns the inventory with low-stock classification
func (h *AdminHandler) ListIngredients(c *gin.Context) {
	ingredients, lowCount, err := h.svc.ListIngredients()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load ingredients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(ingredients),
		"low_stock":   lowCount,
		"ingredients": ingredients,
	})
}

type UpdateStockRequest struct {
	StockQuantity *float64 `json:"stock_quantity" binding:"required"`
}

// UpdateIngredientStock overwrites an ingredient's stock quantity
func (h *AdminHandler) UpdateIngredientStock(c *gin.Context) {
	ingredientID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.svc.UpdateIngredientStock(ingredientID, *req.StockQuantity)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "ingredient_id": ingredientID})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
	}
}

// StreamChanges pushes order and ingredient change events over SSE so the
// admin view can reload on its own terms.
func (h *AdminHandler) StreamChanges(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "SSE not supported"})
		return
	}

	ordersCh, unsubOrders := h.hub.OnChange("orders", 10)
	ingredientsCh, unsubIngredients := h.hub.OnChange("ingredients", 10)
	defer unsubOrders()
	defer unsubIngredients()

	logger.Info("SSE client connected")
	fmt.Fprintf(c.Writer, "event: connected\ndata: {\"status\": \"connected\"}\n\n")
	flusher.Flush()

	ctx := c.Request.Context()
	writeEvent := func(e notify.Event) {
		data, err := json.Marshal(e)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "event: change\ndata: %s\n\n", data)
		flusher.Flush()
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("SSE client disconnected")
			return
		case e := <-ordersCh:
			writeEvent(e)
		case e := <-ingredientsCh:
			writeEvent(e)
		}
	}
}
