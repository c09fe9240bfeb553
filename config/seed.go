package config

import (
	"github.com/mahidrahman375/coffee-shop/models"

	"gorm.io/gorm"
)

// SeedDemoData loads a small cafe fixture (tables, ingredients, menu with
// recipes) so the API is browsable out of the box. It is a no-op when
// tables already exist.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Table{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for n := 1; n <= 8; n++ {
		capacity := 2
		if n%2 == 0 {
			capacity = 4
		}
		if err := db.Create(&models.Table{TableNumber: n, Capacity: capacity, Status: models.TableFree}).Error; err != nil {
			return err
		}
	}

	ingredients := []models.Ingredient{
		{Name: "Milk", Unit: "ml", StockQuantity: 5000, MinimumStock: 1000},
		{Name: "Coffee Beans", Unit: "g", StockQuantity: 2000, MinimumStock: 500},
		{Name: "Sugar", Unit: "g", StockQuantity: 3000, MinimumStock: 400},
		{Name: "Chocolate Syrup", Unit: "ml", StockQuantity: 800, MinimumStock: 200},
	}
	for i := range ingredients {
		if err := db.Create(&ingredients[i]).Error; err != nil {
			return err
		}
	}

	menu := []struct {
		item   models.MenuItem
		recipe map[int]float64 // ingredient index -> quantity needed per unit
	}{
		{models.MenuItem{Name: "Espresso", Description: "Single shot", Price: 2.50, Available: true}, map[int]float64{1: 18}},
		{models.MenuItem{Name: "Latte", Description: "Espresso with steamed milk", Price: 4.00, Available: true}, map[int]float64{0: 200, 1: 18}},
		{models.MenuItem{Name: "Cappuccino", Description: "Espresso, steamed milk, foam", Price: 4.25, Available: true}, map[int]float64{0: 150, 1: 18}},
		{models.MenuItem{Name: "Mocha", Description: "Latte with chocolate", Price: 4.75, Available: true}, map[int]float64{0: 180, 1: 18, 3: 30}},
	}
	for _, m := range menu {
		item := m.item
		if err := db.Create(&item).Error; err != nil {
			return err
		}
		for idx, needed := range m.recipe {
			ii := models.ItemIngredient{
				MenuItemID:     item.ID,
				IngredientID:   ingredients[idx].ID,
				QuantityNeeded: needed,
			}
			if err := db.Create(&ii).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
