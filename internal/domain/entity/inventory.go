package entity

import "time"

// InventoryRecord is the quantity of one food item held by one food bank.
// At most one record exists per (FoodBankID, FoodItemID) pair.
type InventoryRecord struct {
	ID         int64
	FoodBankID int64
	FoodItemID int64
	Quantity   int
	UpdatedAt  time.Time
}
