package model

import "time"

// InventoryModel mirrors the 'inventory' table. One row per (food bank, food item) pair.
type InventoryModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	FoodBankID int64 `gorm:"not null;index:idx_inventory_pair"`
	FoodItemID int64 `gorm:"not null;index:idx_inventory_pair"`
	Quantity   int   `gorm:"not null;default:0;check:quantity >= 0"`
	UpdatedAt  time.Time

	FoodBank *FoodBankModel `gorm:"foreignKey:FoodBankID"`
	FoodItem *FoodItemModel `gorm:"foreignKey:FoodItemID"`
}

// TableName explicitly sets the table name for GORM.
func (InventoryModel) TableName() string {
	return "inventory"
}
