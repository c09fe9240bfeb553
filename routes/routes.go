package routes

import (
	"github.com/mahidrahman375/coffee-shop/handlers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, public *handlers.PublicHandler, ordering *handlers.OrderingHandler, admin *handlers.AdminHandler) {
	// ── Customer-facing routes ─────────────────────────────────────
	api := r.Group("/api")
	{
		api.GET("/tables", public.ListTables)
		api.GET("/menu", public.GetMenu)
		api.GET("/state-machine", public.GetStateMachineInfo)

		// Table session & cart
		api.POST("/tables/:id/session", ordering.SelectTable)
		api.GET("/tables/:id/cart", ordering.GetCart)
		api.POST("/tables/:id/cart/items", ordering.AddToCart)
		api.PUT("/tables/:id/cart/items/:itemId", ordering.UpdateCartItem)
		api.DELETE("/tables/:id/cart/items/:itemId", ordering.RemoveCartItem)

		// Order placement & payment choice
		api.POST("/tables/:id/order", ordering.PlaceOrder)
		api.PUT("/orders/:id/payment-method", ordering.SelectPaymentMethod)
	}

	// ── Staff routes ───────────────────────────────────────────────
	staff := r.Group("/api/admin")
	{
		staff.GET("/orders", admin.ListOrders)
		staff.PUT("/orders/:id/confirm-payment", admin.ConfirmPayment)
		staff.PUT("/orders/:id/cancel", admin.CancelOrder)

		staff.GET("/ingredients", admin.ListIngredients)
		staff.PUT("/ingredients/:id/stock", admin.UpdateIngredientStock)

		staff.GET("/events", admin.StreamChanges)
	}
}
