// Package dashboard computes the organization-wide rollups.
// Nothing is cached; every call reads the current state.
package dashboard

import (
	"context"

	"foodaid/internal/domain/authz"
	"foodaid/internal/domain/entity"
	"foodaid/internal/domain/repository"
	"foodaid/internal/errors"
)

// Compute builds the dashboard from the unit of work.
func Compute(ctx context.Context, uow repository.RepositoryFactory, p entity.Principal) (*entity.DashboardStats, error) {
	if err := authz.Authorize(p, authz.ViewDashboard, authz.Target{}); err != nil {
		return nil, err
	}

	rows, err := uow.Requests().CountByDistrictAndStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count requests")
	}
	districts, err := uow.Districts().List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list districts")
	}
	foodItems, err := uow.FoodItems().List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list food items")
	}
	foodBanks, err := uow.FoodBanks().List(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "list food banks")
	}
	records, err := uow.Inventory().ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list inventory")
	}

	stats := &entity.DashboardStats{
		Districts: DistrictBreakdown(rows, districts),
		Inventory: InventoryBreakdown(foodItems, foodBanks, records),
	}
	for _, row := range rows {
		stats.RequestCounts.Add(row.Status, row.Count)
	}

	return stats, nil
}

// DistrictBreakdown returns one entry per district, in district order,
// including districts without requests.
func DistrictBreakdown(rows []entity.RequestCountRow, districts []*entity.District) []entity.DistrictStats {
	byDistrict := make(map[string]*entity.RequestCounts, len(districts))
	for _, row := range rows {
		counts, ok := byDistrict[row.District]
		if !ok {
			counts = &entity.RequestCounts{}
			byDistrict[row.District] = counts
		}
		counts.Add(row.Status, row.Count)
	}

	out := make([]entity.DistrictStats, 0, len(districts))
	for _, district := range districts {
		stats := entity.DistrictStats{District: district.Name}
		if counts, ok := byDistrict[district.Name]; ok {
			stats.RequestCounts = *counts
		}
		out = append(out, stats)
	}

	return out
}

// InventoryBreakdown returns one entry per food item with the total stock and
// the per-food-bank quantities. Banks without stock of the item are omitted.
func InventoryBreakdown(foodItems []*entity.FoodItem, foodBanks []*entity.FoodBank, records []*entity.InventoryRecord) []entity.InventoryStats {
	bankNames := make(map[int64]string, len(foodBanks))
	for _, bank := range foodBanks {
		bankNames[bank.ID] = bank.Name
	}

	byItem := make(map[int64][]*entity.InventoryRecord)
	for _, record := range records {
		byItem[record.FoodItemID] = append(byItem[record.FoodItemID], record)
	}

	out := make([]entity.InventoryStats, 0, len(foodItems))
	for _, item := range foodItems {
		stats := entity.InventoryStats{FoodItem: item.Name, FoodBanks: map[string]int64{}}
		for _, record := range byItem[item.ID] {
			if record.Quantity <= 0 {
				continue
			}
			name, ok := bankNames[record.FoodBankID]
			if !ok {
				continue
			}
			stats.TotalQuantity += int64(record.Quantity)
			stats.FoodBanks[name] += int64(record.Quantity)
		}
		out = append(out, stats)
	}

	return out
}
