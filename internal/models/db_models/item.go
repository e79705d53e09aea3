package db_models

import (
	"github.com/shopspring/decimal"
)

// Item represents a purchasable product. CategoryID is nullable so an
// item can exist without a category.
type Item struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CategoryID  *uint           `gorm:"index"`
	Category    *Category       `gorm:"foreignKey:CategoryID"`
}

func (i *Item) TableName() string {
	return "items"
}
