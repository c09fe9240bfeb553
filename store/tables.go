package store

import (
	"github.com/mahidrahman375/coffee-shop/models"
	"github.com/mahidrahman375/coffee-shop/notify"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type TableRepo struct {
	db  *gorm.DB
	hub *notify.Hub
	log *zap.Logger
}

func NewTableRepo(db *gorm.DB, hub *notify.Hub, log *zap.Logger) *TableRepo {
	return &TableRepo{db: db, hub: hub, log: log.Named("table_repo")}
}

// List returns all tables ordered by table number.
func (r *TableRepo) List() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Order("table_number").Find(&tables).Error
	return tables, err
}

func (r *TableRepo) Get(id uint) (models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	return table, err
}

// SetStatus flips a table between free and occupied.
func (r *TableRepo) SetStatus(id uint, status models.TableStatus) error {
	res := r.db.Model(&models.Table{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.log.Debug("table status updated", zap.Uint("table_id", id), zap.String("status", string(status)))
	r.hub.Publish(notify.Event{Table: "tables", Action: notify.ActionUpdate, ID: id})
	return nil
}
