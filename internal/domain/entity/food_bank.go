package entity

import "time"

// FoodBank is a physical aid-distribution site administered by one operator.
type FoodBank struct {
	ID          int64
	Name        string
	Location    string  // Free-text street address.
	District    string  // District name; routes pending requests to the bank.
	ContactInfo string
	Latitude    float64
	Longitude   float64
	OperatorID  int64 // Actor with RoleFoodBankOperator.
	CreatedAt   time.Time
}

// AdministeredBy reports whether the actor operates this food bank.
func (f *FoodBank) AdministeredBy(actorID int64) bool {
	return f != nil && f.OperatorID == actorID
}

// FoodBankWithInventory is a food bank together with its current stock.
type FoodBankWithInventory struct {
	FoodBank
	Inventory []*InventoryRecord
}
