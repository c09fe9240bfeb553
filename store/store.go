// Package store is the persistence client: one repository per entity over
// a shared *gorm.DB, constructed once at startup and passed by reference.
// Writes publish change events through the notify hub so views can react.
package store

import (
	"github.com/mahidrahman375/coffee-shop/notify"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repos bundles every repository so wiring stays a single constructor call.
type Repos struct {
	Tables      *TableRepo
	Menu        *MenuRepo
	Ingredients *IngredientRepo
	Orders      *OrderRepo
	Customers   *CustomerRepo
}

func New(db *gorm.DB, hub *notify.Hub, log *zap.Logger) *Repos {
	return &Repos{
		Tables:      NewTableRepo(db, hub, log),
		Menu:        NewMenuRepo(db, log),
		Ingredients: NewIngredientRepo(db, hub, log),
		Orders:      NewOrderRepo(db, hub, log),
		Customers:   NewCustomerRepo(db, hub, log),
	}
}
