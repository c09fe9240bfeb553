package service

import (
	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/statemachine"
	"github.com/mahidrahman375/coffee-shop/store"

	"go.uber.org/zap"
)

// Admin is the staff-facing workflow: review orders, confirm payments,
// cancel orders with stock restoration, edit ingredient stock.
type Admin struct {
	tables      *store.TableRepo
	menu        *store.MenuRepo
	ingredients *store.IngredientRepo
	orders      *store.OrderRepo
	log         *zap.Logger
}

func NewAdmin(repos *store.Repos, log *zap.Logger) *Admin {
	return &Admin{
		tables:      repos.Tables,
		menu:        repos.Menu,
		ingredients: repos.Ingredients,
		orders:      repos.Orders,
		log:         log.Named("admin"),
	}
}

// OrdersOverview is the staff dashboard: all orders newest first, counts
// per status and the revenue from completed orders.
type OrdersOverview struct {
	Orders       []models.Order `json:"orders"`
	Summary      map[string]int `json:"order_summary"`
	TotalRevenue float64        `json:"total_revenue"`
}

func (a *Admin) ListOrders(status models.OrderStatus) (OrdersOverview, error) {
	orders, err := a.orders.List(status)
	if err != nil {
		return OrdersOverview{}, err
	}

	overview := OrdersOverview{Orders: orders, Summary: map[string]int{}}
	for _, o := range orders {
		overview.Summary[string(o.Status)]++
		if o.Status == models.StatusCompleted {
			overview.TotalRevenue += o.TotalAmount
		}
	}
	return overview, nil
}

// ConfirmPayment marks the order paid and completed, then frees its table.
// The two writes are independent; a failure between them leaves the table
// occupied with a completed order and must be fixed by hand.
func (a *Admin) ConfirmPayment(orderID, tableID uint) error {
	order, err := a.orders.Get(orderID)
	if err != nil {
		return err
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCompleted, "staff"); err != nil {
		return err
	}

	if err := a.orders.MarkPaid(orderID); err != nil {
		return err
	}
	if err := a.tables.SetStatus(tableID, models.TableFree); err != nil {
		return err
	}

	a.log.Info("payment confirmed", zap.Uint("order_id", orderID), zap.Uint("table_id", tableID))
	return nil
}

// CancelOrder re-derives each line's recipe and adds the consumed
// quantities back to stock, then cancels the order and frees the table.
// Restoration runs once per line: the stored quantity is assumed to cover
// every deduction merged into it while ordering. Operator confirmation is
// the caller's responsibility.
func (a *Admin) CancelOrder(orderID, tableID uint) error {
	order, err := a.orders.Get(orderID)
	if err != nil {
		return err
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "staff"); err != nil {
		return err
	}

	details, err := a.orders.DetailsByOrder(orderID)
	if err != nil {
		return err
	}
	for _, detail := range details {
		recipe, err := a.menu.Recipe(detail.MenuItemID)
		if err != nil {
			return err
		}
		for _, ing := range recipe {
			newStock := ing.Ingredient.StockQuantity + ing.QuantityNeeded*float64(detail.Quantity)
			if err := a.ingredients.SetStock(ing.IngredientID, newStock); err != nil {
				return err
			}
			a.log.Debug("ingredient restored",
				zap.Uint("ingredient_id", ing.IngredientID),
				zap.Float64("amount", ing.QuantityNeeded*float64(detail.Quantity)),
				zap.Float64("new_total", newStock))
		}
	}

	if err := a.orders.SetStatus(orderID, models.StatusCancelled); err != nil {
		return err
	}
	if err := a.tables.SetStatus(tableID, models.TableFree); err != nil {
		return err
	}

	a.log.Info("order cancelled", zap.Uint("order_id", orderID), zap.Uint("table_id", tableID))
	return nil
}

// UpdateIngredientStock overwrites stock with an absolute value. No delta
// validation and no lower bound.
func (a *Admin) UpdateIngredientStock(ingredientID uint, quantity float64) error {
	if _, err := a.ingredients.Get(ingredientID); err != nil {
		return err
	}
	if err := a.ingredients.SetStock(ingredientID, quantity); err != nil {
		return err
	}
	a.log.Info("stock updated by staff", zap.Uint("ingredient_id", ingredientID), zap.Float64("quantity", quantity))
	return nil
}

// IngredientStatus pairs an ingredient with its derived stock state.
type IngredientStatus struct {
	models.Ingredient
	Status string `json:"status"`
}

// ListIngredients returns the inventory with each ingredient classified
// "Low Stock" or "In Stock", plus the low count for the alert banner.
func (a *Admin) ListIngredients() ([]IngredientStatus, int, error) {
	ingredients, err := a.ingredients.List()
	if err != nil {
		return nil, 0, err
	}

	out := make([]IngredientStatus, 0, len(ingredients))
	low := 0
	for _, ing := range ingredients {
		status := "In Stock"
		if ing.LowStock() {
			status = "Low Stock"
			low++
		}
		out = append(out, IngredientStatus{Ingredient: ing, Status: status})
	}
	return out, low, nil
}
