package store

import (
	"path/filepath"
	"testing"

	"github.com/mahidrahman375/coffee-shop/config"
	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/notify"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRepos(t *testing.T) (*Repos, *notify.Hub) {
	t.Helper()
	db, err := config.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	hub := notify.NewHub()
	return New(db, hub, zap.NewNop()), hub
}

func TestPendingByTable(t *testing.T) {
	repos, _ := newTestRepos(t)

	order := models.Order{TableID: 1, TotalAmount: 4.00, Status: models.StatusPending, PaymentStatus: models.PaymentPending}
	assert.NoError(t, repos.Orders.Create(&order))

	got, err := repos.Orders.PendingByTable(1)
	assert.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// terminal orders don't count as pending
	assert.NoError(t, repos.Orders.SetStatus(order.ID, models.StatusCompleted))
	_, err = repos.Orders.PendingByTable(1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repos.Orders.PendingByTable(2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDetailByItemAndUpdate(t *testing.T) {
	repos, _ := newTestRepos(t)

	order := models.Order{TableID: 1, Status: models.StatusPending, PaymentStatus: models.PaymentPending}
	assert.NoError(t, repos.Orders.Create(&order))

	_, err := repos.Orders.DetailByItem(order.ID, 5)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	detail := models.OrderDetail{OrderID: order.ID, MenuItemID: 5, Quantity: 2, Price: 4.00, Subtotal: 8.00}
	assert.NoError(t, repos.Orders.CreateDetail(&detail))

	assert.NoError(t, repos.Orders.UpdateDetail(detail.ID, 4, 16.00))
	got, err := repos.Orders.DetailByItem(order.ID, 5)
	assert.NoError(t, err)
	assert.Equal(t, 4, got.Quantity)
	assert.Equal(t, 16.00, got.Subtotal)
}

func TestWritesPublishChangeEvents(t *testing.T) {
	repos, hub := newTestRepos(t)
	orders, cancel := hub.OnChange("orders", 10)
	defer cancel()
	ingredients, cancelIng := hub.OnChange("ingredients", 10)
	defer cancelIng()

	order := models.Order{TableID: 1, Status: models.StatusPending, PaymentStatus: models.PaymentPending}
	assert.NoError(t, repos.Orders.Create(&order))
	assert.Equal(t, notify.Event{Table: "orders", Action: notify.ActionInsert, ID: order.ID}, <-orders)

	assert.NoError(t, repos.Orders.MarkPaid(order.ID))
	assert.Equal(t, notify.ActionUpdate, (<-orders).Action)

	ing := models.Ingredient{Name: "Milk", StockQuantity: 10}
	assert.NoError(t, repos.Ingredients.db.Create(&ing).Error)
	assert.NoError(t, repos.Ingredients.SetStock(ing.ID, 4))
	assert.Equal(t, notify.Event{Table: "ingredients", Action: notify.ActionUpdate, ID: ing.ID}, <-ingredients)

	got, err := repos.Ingredients.Get(ing.ID)
	assert.NoError(t, err)
	assert.Equal(t, 4.0, got.StockQuantity)
}
