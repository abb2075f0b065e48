package impl

import (
	"context"
	"testing"

	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/ledger"
	"foodaid/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_DashboardStats(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	service := NewDashboardService(DashboardServiceParams{
		TxManager: fx.world.Store.TransactionManager(),
		Repos:     fx.world.Store.Repositories(),
		Logger:    newDiscardLogger(),
	})
	inventory := NewInventoryService(InventoryServiceParams{
		TxManager: fx.world.Store.TransactionManager(),
		Repos:     fx.world.Store.Repositories(),
		Logger:    newDiscardLogger(),
	})

	_, err := fx.service.CreateRequest(ctx, testutil.Principal(fx.world.Alice), fx.riceInput(3))
	require.NoError(t, err)
	_, err = inventory.AddInventory(ctx, testutil.Principal(fx.world.KLOperator), ledger.Entry{
		FoodBankID: fx.world.KLFoodBank.ID,
		FoodItemID: fx.world.Rice.ID,
		Quantity:   25,
	})
	require.NoError(t, err)

	stats, err := service.DashboardStats(ctx, testutil.Principal(fx.world.Admin))
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Total)
	assert.EqualValues(t, 1, stats.Pending)
	require.Len(t, stats.Districts, 2)
	require.Len(t, stats.Inventory, 2)
	assert.Equal(t, map[string]int64{"KL Food Bank": 25}, stats.Inventory[0].FoodBanks)

	_, err = service.DashboardStats(ctx, testutil.Principal(fx.world.KLOperator))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
