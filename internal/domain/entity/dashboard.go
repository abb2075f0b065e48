package entity

// RequestCounts is a breakdown of requests by lifecycle status.
type RequestCounts struct {
	Total     int64
	Pending   int64
	Assigned  int64
	Fulfilled int64
}

// Add folds count requests of the given status into the breakdown.
func (c *RequestCounts) Add(status RequestStatus, count int64) {
	c.Total += count
	switch status {
	case StatusPending:
		c.Pending += count
	case StatusAssigned:
		c.Assigned += count
	case StatusFulfilled:
		c.Fulfilled += count
	}
}

// RequestCountRow is one (district, status) group of requests.
type RequestCountRow struct {
	District string
	Status   RequestStatus
	Count    int64
}

// DistrictStats is the request breakdown of one district.
type DistrictStats struct {
	District string
	RequestCounts
}

// InventoryStats is the stock of one food item across all food banks.
type InventoryStats struct {
	FoodItem      string
	TotalQuantity int64
	FoodBanks     map[string]int64 // Food bank name to quantity; banks without stock are absent.
}

// DashboardStats is the organization-wide rollup.
type DashboardStats struct {
	RequestCounts
	Districts []DistrictStats
	Inventory []InventoryStats
}
