package store

import (
	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/notify"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderRepo struct {
	db  *gorm.DB
	hub *notify.Hub
	log *zap.Logger
}

func NewOrderRepo(db *gorm.DB, hub *notify.Hub, log *zap.Logger) *OrderRepo {
	return &OrderRepo{db: db, hub: hub, log: log.Named("order_repo")}
}

// Create inserts a new order row.
func (r *OrderRepo) Create(order *models.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	r.hub.Publish(notify.Event{Table: "orders", Action: notify.ActionInsert, ID: order.ID})
	return nil
}

func (r *OrderRepo) Get(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	return order, err
}

// GetFull returns an order with its lines, their menu items and the table.
func (r *OrderRepo) GetFull(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Details.MenuItem").Preload("Table").First(&order, id).Error
	return order, err
}

// PendingByTable finds the table's pending order with its lines, or
// gorm.ErrRecordNotFound when the table has none.
func (r *OrderRepo) PendingByTable(tableID uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Details.MenuItem").
		Where("table_id = ? AND status = ?", tableID, models.StatusPending).
		First(&order).Error
	return order, err
}

// List returns orders newest first, optionally filtered by status.
func (r *OrderRepo) List(status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	query := r.db.Preload("Details.MenuItem").Preload("Table")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (r *OrderRepo) UpdateTotal(id uint, total float64) error {
	if err := r.db.Model(&models.Order{}).Where("id = ?", id).Update("total_amount", total).Error; err != nil {
		return err
	}
	r.hub.Publish(notify.Event{Table: "orders", Action: notify.ActionUpdate, ID: id})
	return nil
}

func (r *OrderRepo) SetStatus(id uint, status models.OrderStatus) error {
	if err := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return err
	}
	r.hub.Publish(notify.Event{Table: "orders", Action: notify.ActionUpdate, ID: id})
	return nil
}

func (r *OrderRepo) SetPaymentMethod(id uint, method models.PaymentMethod) error {
	if err := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_method": method,
			"payment_status": models.PaymentPending,
		}).Error; err != nil {
		return err
	}
	r.hub.Publish(notify.Event{Table: "orders", Action: notify.ActionUpdate, ID: id})
	return nil
}

// MarkPaid sets payment_status=paid and status=completed in one write.
func (r *OrderRepo) MarkPaid(id uint) error {
	if err := r.db.Model(&models.Order{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": models.PaymentPaid,
			"status":         models.StatusCompleted,
		}).Error; err != nil {
		return err
	}
	r.log.Debug("order marked paid", zap.Uint("order_id", id))
	r.hub.Publish(notify.Event{Table: "orders", Action: notify.ActionUpdate, ID: id})
	return nil
}

// DetailByItem finds the order's line for one menu item, or
// gorm.ErrRecordNotFound when the item has no line yet.
func (r *OrderRepo) DetailByItem(orderID, menuItemID uint) (models.OrderDetail, error) {
	var detail models.OrderDetail
	err := r.db.Where("order_id = ? AND menu_item_id = ?", orderID, menuItemID).First(&detail).Error
	return detail, err
}

func (r *OrderRepo) CreateDetail(detail *models.OrderDetail) error {
	if err := r.db.Create(detail).Error; err != nil {
		return err
	}
	r.hub.Publish(notify.Event{Table: "order_details", Action: notify.ActionInsert, ID: detail.ID})
	return nil
}

func (r *OrderRepo) UpdateDetail(id uint, quantity int, subtotal float64) error {
	if err := r.db.Model(&models.OrderDetail{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"subtotal": subtotal,
		}).Error; err != nil {
		return err
	}
	r.hub.Publish(notify.Event{Table: "order_details", Action: notify.ActionUpdate, ID: id})
	return nil
}

// DetailsByOrder returns the order's lines with menu items joined in.
func (r *OrderRepo) DetailsByOrder(orderID uint) ([]models.OrderDetail, error) {
	var details []models.OrderDetail
	err := r.db.Preload("MenuItem").Where("order_id = ?", orderID).Find(&details).Error
	return details, err
}
