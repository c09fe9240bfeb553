package store

import (
	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/notify"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IngredientRepo struct {
	db  *gorm.DB
	hub *notify.Hub
	log *zap.Logger
}

func NewIngredientRepo(db *gorm.DB, hub *notify.Hub, log *zap.Logger) *IngredientRepo {
	return &IngredientRepo{db: db, hub: hub, log: log.Named("ingredient_repo")}
}

// List returns all ingredients sorted by name.
func (r *IngredientRepo) List() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Order("name").Find(&ingredients).Error
	return ingredients, err
}

func (r *IngredientRepo) Get(id uint) (models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.First(&ingredient, id).Error
	return ingredient, err
}

// SetStock overwrites an ingredient's stock with an absolute value.
// There is no lower bound: stock may go negative.
func (r *IngredientRepo) SetStock(id uint, quantity float64) error {
	res := r.db.Model(&models.Ingredient{}).Where("id = ?", id).Update("stock_quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.log.Debug("stock updated", zap.Uint("ingredient_id", id), zap.Float64("stock_quantity", quantity))
	r.hub.Publish(notify.Event{Table: "ingredients", Action: notify.ActionUpdate, ID: id})
	return nil
}
