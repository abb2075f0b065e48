package memory

import (
	"context"
	"sort"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
)

type inventoryRepository struct{ b binding }

func (r inventoryRepository) FindByPair(_ context.Context, foodBankID, foodItemID int64) (*entity.InventoryRecord, error) {
	var found *entity.InventoryRecord
	r.b.read(func(st *state) {
		for _, rec := range st.inventory {
			if rec.FoodBankID == foodBankID && rec.FoodItemID == foodItemID {
				cp := rec
				found = &cp

				return
			}
		}
	})
	if found == nil {
		return nil, domainerrors.ErrInventoryRecordNotFound
	}

	return found, nil
}

func (r inventoryRepository) Create(_ context.Context, record *entity.InventoryRecord) error {
	r.b.write(func(st *state) {
		record.ID = st.nextID(tableInventory)
		st.inventory[record.ID] = *record
	})

	return nil
}

func (r inventoryRepository) Increment(_ context.Context, record *entity.InventoryRecord, delta int) error {
	var ok bool
	r.b.write(func(st *state) {
		var stored entity.InventoryRecord
		if stored, ok = st.inventory[record.ID]; !ok {
			return
		}
		stored.Quantity += delta
		stored.UpdatedAt = record.UpdatedAt
		st.inventory[record.ID] = stored
		record.Quantity = stored.Quantity
	})
	if !ok {
		return domainerrors.ErrInventoryRecordNotFound
	}

	return nil
}

func (r inventoryRepository) SetQuantity(_ context.Context, record *entity.InventoryRecord, quantity int) error {
	var ok bool
	r.b.write(func(st *state) {
		var stored entity.InventoryRecord
		if stored, ok = st.inventory[record.ID]; !ok {
			return
		}
		stored.Quantity = quantity
		stored.UpdatedAt = record.UpdatedAt
		st.inventory[record.ID] = stored
		record.Quantity = quantity
	})
	if !ok {
		return domainerrors.ErrInventoryRecordNotFound
	}

	return nil
}

func (r inventoryRepository) ListByFoodBank(_ context.Context, foodBankID int64) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	r.b.read(func(st *state) {
		for _, rec := range st.inventory {
			if rec.FoodBankID == foodBankID {
				cp := rec
				out = append(out, &cp)
			}
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].FoodItemID < out[j].FoodItemID })

	return out, nil
}

func (r inventoryRepository) ListAll(_ context.Context) ([]*entity.InventoryRecord, error) {
	var out []*entity.InventoryRecord
	r.b.read(func(st *state) {
		for _, rec := range st.inventory {
			cp := rec
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
