package store

import (
	"github.com/mahidrahman375/coffee-shop/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MenuRepo reads menu items and their recipes. The menu is managed out of
// band (seed or direct edits), so this repo is read-only.
type MenuRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewMenuRepo(db *gorm.DB, log *zap.Logger) *MenuRepo {
	return &MenuRepo{db: db, log: log.Named("menu_repo")}
}

// ListAvailable returns the orderable menu, sorted by name.
func (r *MenuRepo) ListAvailable() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("available = ?", true).Order("name").Find(&items).Error
	return items, err
}

func (r *MenuRepo) Get(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	return item, err
}

// Recipe returns the item's recipe lines with each ingredient's current
// row joined in.
func (r *MenuRepo) Recipe(menuItemID uint) ([]models.ItemIngredient, error) {
	var recipe []models.ItemIngredient
	err := r.db.Preload("Ingredient").Where("menu_item_id = ?", menuItemID).Find(&recipe).Error
	return recipe, err
}
