package models

import "time"

type MenuItem struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	Name        string           `json:"name" gorm:"not null"`
	Description string           `json:"description"`
	Price       float64          `json:"price" gorm:"not null"`
	Available   bool             `json:"available" gorm:"default:true"`
	Ingredients []ItemIngredient `json:"ingredients,omitempty" gorm:"foreignKey:MenuItemID"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type Ingredient struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Unit          string    `json:"unit"`
	StockQuantity float64   `json:"stock_quantity"`
	MinimumStock  float64   `json:"minimum_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LowStock reports whether the ingredient should be flagged for restocking.
// It is a derived display state, never persisted.
func (i Ingredient) LowStock() bool {
	return i.StockQuantity <= i.MinimumStock
}

// ItemIngredient is one recipe line: how much of an ingredient a single
// unit of a menu item consumes.
type ItemIngredient struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	MenuItemID     uint       `json:"menu_item_id" gorm:"not null;index"`
	IngredientID   uint       `json:"ingredient_id" gorm:"not null"`
	Ingredient     Ingredient `json:"ingredient,omitempty" gorm:"foreignKey:IngredientID"`
	QuantityNeeded float64    `json:"quantity_needed" gorm:"not null"`
}
