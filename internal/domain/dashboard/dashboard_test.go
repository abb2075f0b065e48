package dashboard_test

import (
	"context"
	"testing"

	"foodaid/internal/domain/dashboard"
	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/ledger"
	"foodaid/internal/domain/requestflow"
	"foodaid/internal/domain/tracking"
	"foodaid/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	world := testutil.NewWorld(t)
	ctx := context.Background()
	uow := world.Store.Repositories()
	flow := requestflow.New(tracking.NewGenerator(tracking.DefaultMaxAttempts), testutil.Clock)
	book := ledger.New(testutil.Clock)
	admin := testutil.Principal(world.Admin)

	create := func(who *entity.Actor, district string) *entity.Request {
		req, err := flow.Create(ctx, uow, testutil.Principal(who), requestflow.CreateInput{
			District: district,
			Items:    []requestflow.LineItemInput{{FoodItemID: world.Rice.ID, Quantity: 1}},
		})
		require.NoError(t, err)

		return req
	}
	assignTo := func(req *entity.Request, bank *entity.FoodBank) {
		id := bank.ID
		_, err := flow.Update(ctx, uow, admin, req.ID, requestflow.UpdateInput{AssignedToID: &id})
		require.NoError(t, err)
	}

	create(world.Alice, world.KualaLumpur.Name)
	assigned := create(world.Bob, world.KualaLumpur.Name)
	assignTo(assigned, world.KLFoodBank)
	fulfilled := create(world.Alice, world.KualaLumpur.Name)
	assignTo(fulfilled, world.KLFoodBank)
	status := entity.StatusFulfilled
	_, err := flow.Update(ctx, uow, testutil.Principal(world.KLOperator), fulfilled.ID, requestflow.UpdateInput{Status: &status})
	require.NoError(t, err)

	for _, e := range []struct {
		who   *entity.Actor
		entry ledger.Entry
	}{
		{world.KLOperator, ledger.Entry{FoodBankID: world.KLFoodBank.ID, FoodItemID: world.Rice.ID, Quantity: 100}},
		{world.PGOperator, ledger.Entry{FoodBankID: world.PGFoodBank.ID, FoodItemID: world.Rice.ID, Quantity: 20}},
		{world.PGOperator, ledger.Entry{FoodBankID: world.PGFoodBank.ID, FoodItemID: world.Oil.ID, Quantity: 4}},
	} {
		_, err := book.Add(ctx, uow, testutil.Principal(e.who), e.entry)
		require.NoError(t, err)
	}
	_, err = book.Set(ctx, uow, testutil.Principal(world.PGOperator),
		ledger.Entry{FoodBankID: world.PGFoodBank.ID, FoodItemID: world.Oil.ID, Quantity: 0})
	require.NoError(t, err)

	stats, err := dashboard.Compute(ctx, uow, admin)
	require.NoError(t, err)

	assert.Equal(t, entity.RequestCounts{Total: 3, Pending: 1, Assigned: 1, Fulfilled: 1}, stats.RequestCounts)

	require.Len(t, stats.Districts, 2)
	assert.Equal(t, entity.DistrictStats{District: "Kuala Lumpur", RequestCounts: stats.RequestCounts}, stats.Districts[0])
	assert.Equal(t, entity.DistrictStats{District: "Penang"}, stats.Districts[1], "districts without requests are listed with zero counts")

	var sum entity.RequestCounts
	for _, d := range stats.Districts {
		sum.Total += d.Total
		sum.Pending += d.Pending
		sum.Assigned += d.Assigned
		sum.Fulfilled += d.Fulfilled
	}
	assert.Equal(t, stats.RequestCounts, sum)

	require.Len(t, stats.Inventory, 2)
	assert.Equal(t, entity.InventoryStats{
		FoodItem:      "Rice",
		TotalQuantity: 120,
		FoodBanks:     map[string]int64{"KL Food Bank": 100, "Penang Food Bank": 20},
	}, stats.Inventory[0])
	assert.Equal(t, entity.InventoryStats{
		FoodItem:      "Cooking Oil",
		TotalQuantity: 0,
		FoodBanks:     map[string]int64{},
	}, stats.Inventory[1])
}

func TestCompute_OrgAdminOnly(t *testing.T) {
	world := testutil.NewWorld(t)

	for _, actor := range []*entity.Actor{world.Alice, world.KLOperator} {
		_, err := dashboard.Compute(context.Background(), world.Store.Repositories(), testutil.Principal(actor))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestDistrictBreakdown_IgnoresUnknownDistricts(t *testing.T) {
	rows := []entity.RequestCountRow{
		{District: "Kuala Lumpur", Status: entity.StatusPending, Count: 2},
		{District: "Nowhere", Status: entity.StatusPending, Count: 5},
	}
	districts := []*entity.District{{ID: 1, Name: "Kuala Lumpur"}}

	got := dashboard.DistrictBreakdown(rows, districts)
	assert.Equal(t, []entity.DistrictStats{
		{District: "Kuala Lumpur", RequestCounts: entity.RequestCounts{Total: 2, Pending: 2}},
	}, got)
}

func TestInventoryBreakdown_EmptyWorld(t *testing.T) {
	got := dashboard.InventoryBreakdown(nil, nil, nil)
	assert.Empty(t, got)
}
