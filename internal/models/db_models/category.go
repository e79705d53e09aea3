package db_models

// Category is a named grouping that items may reference.
// Names are unique across the table.
type Category struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"unique;not null"`
	Items []Item `gorm:"foreignKey:CategoryID"`
}

func (c *Category) TableName() string {
	return "categories"
}
