package store

import (
	"errors"

	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/notify"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CustomerRepo struct {
	db  *gorm.DB
	hub *notify.Hub
	log *zap.Logger
}

func NewCustomerRepo(db *gorm.DB, hub *notify.Hub, log *zap.Logger) *CustomerRepo {
	return &CustomerRepo{db: db, hub: hub, log: log.Named("customer_repo")}
}

// FindOrCreate returns the walk-in customer record matching name and phone,
// creating it on first sight.
func (r *CustomerRepo) FindOrCreate(name, phone string) (models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("name = ? AND phone = ?", name, phone).First(&customer).Error
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return customer, err
	}

	customer = models.Customer{Name: name, Phone: phone}
	if err := r.db.Create(&customer).Error; err != nil {
		return customer, err
	}
	r.hub.Publish(notify.Event{Table: "customers", Action: notify.ActionInsert, ID: customer.ID})
	return customer, nil
}
