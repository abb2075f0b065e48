package memory

import (
	"context"
	"sort"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
)

type foodItemRepository struct{ b binding }

func (r foodItemRepository) Create(_ context.Context, item *entity.FoodItem) error {
	var err error
	r.b.write(func(st *state) {
		for _, fi := range st.foodItems {
			if fi.Name == item.Name {
				err = domainerrors.ErrFoodItemAlreadyExists

				return
			}
		}
		item.ID = st.nextID(tableFoodItems)
		st.foodItems[item.ID] = *item
	})

	return err
}

func (r foodItemRepository) FindByID(_ context.Context, id int64) (*entity.FoodItem, error) {
	var (
		found entity.FoodItem
		ok    bool
	)
	r.b.read(func(st *state) { found, ok = st.foodItems[id] })
	if !ok {
		return nil, domainerrors.ErrFoodItemNotFound
	}

	return &found, nil
}

func (r foodItemRepository) FindByName(_ context.Context, name string) (*entity.FoodItem, error) {
	var found *entity.FoodItem
	r.b.read(func(st *state) {
		for _, fi := range st.foodItems {
			if fi.Name == name {
				cp := fi
				found = &cp

				return
			}
		}
	})
	if found == nil {
		return nil, domainerrors.ErrFoodItemNotFound
	}

	return found, nil
}

func (r foodItemRepository) List(_ context.Context) ([]*entity.FoodItem, error) {
	var out []*entity.FoodItem
	r.b.read(func(st *state) {
		for _, fi := range st.foodItems {
			cp := fi
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

type districtRepository struct{ b binding }

func (r districtRepository) Create(_ context.Context, district *entity.District) error {
	var err error
	r.b.write(func(st *state) {
		for _, d := range st.districts {
			if d.Name == district.Name {
				err = domainerrors.ErrDistrictAlreadyExists

				return
			}
		}
		district.ID = st.nextID(tableDistricts)
		st.districts[district.ID] = *district
	})

	return err
}

func (r districtRepository) FindByID(_ context.Context, id int64) (*entity.District, error) {
	var (
		found entity.District
		ok    bool
	)
	r.b.read(func(st *state) { found, ok = st.districts[id] })
	if !ok {
		return nil, domainerrors.ErrDistrictNotFound
	}

	return &found, nil
}

func (r districtRepository) FindByName(_ context.Context, name string) (*entity.District, error) {
	var found *entity.District
	r.b.read(func(st *state) {
		for _, d := range st.districts {
			if d.Name == name {
				cp := d
				found = &cp

				return
			}
		}
	})
	if found == nil {
		return nil, domainerrors.ErrDistrictNotFound
	}

	return found, nil
}

func (r districtRepository) List(_ context.Context) ([]*entity.District, error) {
	var out []*entity.District
	r.b.read(func(st *state) {
		for _, d := range st.districts {
			cp := d
			out = append(out, &cp)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
