package models

import "time"

// TableStatus represents whether a table is taken
type TableStatus string

const (
	TableFree     TableStatus = "free"
	TableOccupied TableStatus = "occupied"
)

type Table struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	TableNumber int         `json:"table_number" gorm:"uniqueIndex;not null"`
	Capacity    int         `json:"capacity" gorm:"default:4"`
	Status      TableStatus `json:"status" gorm:"not null;default:'free'"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
