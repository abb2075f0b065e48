package model

import "gorm.io/datatypes"

// FoodItemModel mirrors the 'food_items' table.
type FoodItemModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(100);unique;not null"`
	Icon     string `gorm:"type:varchar(32)"`
	Category string `gorm:"type:varchar(100)"`
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}

// DistrictModel mirrors the 'districts' table. Boundary holds a GeoJSON document.
type DistrictModel struct {
	ID       int64          `gorm:"primaryKey;autoIncrement"`
	Name     string         `gorm:"type:varchar(100);unique;not null"`
	State    string         `gorm:"type:varchar(100)"`
	Boundary datatypes.JSON `gorm:"type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (DistrictModel) TableName() string {
	return "districts"
}
