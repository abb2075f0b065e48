package requestflow_test

import (
	"context"
	"regexp"
	"testing"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/ledger"
	"foodaid/internal/domain/repository"
	"foodaid/internal/domain/requestflow"
	"foodaid/internal/domain/tracking"
	mockRepo "foodaid/internal/mocks/repository"
	"foodaid/internal/testutil"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var trackingPattern = regexp.MustCompile(`^B40-[0-9A-F]{6}$`)

type flowFixtures struct {
	flow  *requestflow.Flow
	world *testutil.World
	uow   repository.RepositoryFactory
}

func createTestFlow(t *testing.T) flowFixtures {
	world := testutil.NewWorld(t)

	return flowFixtures{
		flow:  requestflow.New(tracking.NewGenerator(tracking.DefaultMaxAttempts), testutil.Clock),
		world: world,
		uow:   world.Store.Repositories(),
	}
}

func (fx flowFixtures) riceIn(district string) requestflow.CreateInput {
	return requestflow.CreateInput{
		Location:  "Jalan Tun Razak",
		District:  district,
		Latitude:  3.1579,
		Longitude: 101.7116,
		Items:     []requestflow.LineItemInput{{FoodItemID: fx.world.Rice.ID, Quantity: 1}},
	}
}

func (fx flowFixtures) create(t *testing.T, who *entity.Actor, district string) *entity.Request {
	t.Helper()

	req, err := fx.flow.Create(context.Background(), fx.uow, testutil.Principal(who), fx.riceIn(district))
	require.NoError(t, err)

	return req
}

func (fx flowFixtures) assign(t *testing.T, requestID int64, foodBank *entity.FoodBank) *entity.Request {
	t.Helper()

	id := foodBank.ID
	req, err := fx.flow.Update(context.Background(), fx.uow, testutil.Principal(fx.world.Admin), requestID,
		requestflow.UpdateInput{AssignedToID: &id})
	require.NoError(t, err)

	return req
}

func statusPtr(s entity.RequestStatus) *entity.RequestStatus { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestFlow_Create(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	in := fx.riceIn(fx.world.KualaLumpur.Name)
	in.Items = append(in.Items, requestflow.LineItemInput{FoodItemID: fx.world.Oil.ID, Quantity: 2})

	req, err := fx.flow.Create(ctx, fx.uow, testutil.Principal(fx.world.Alice), in)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, req.Status)
	assert.Regexp(t, trackingPattern, req.TrackingNumber)
	assert.Equal(t, fx.world.Alice.ID, req.RequesterID)
	assert.Nil(t, req.AssignedToID)
	assert.Nil(t, req.FulfilledAt)
	assert.Equal(t, testutil.Now, req.CreatedAt)

	stored, err := fx.uow.Requests().FindByID(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 2, stored.Items[1].Quantity)
}

func TestFlow_Create_Rejections(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()
	alice := testutil.Principal(fx.world.Alice)

	tests := []struct {
		name    string
		who     entity.Principal
		mutate  func(in *requestflow.CreateInput)
		wantErr error
	}{
		{
			name:    "no items",
			who:     alice,
			mutate:  func(in *requestflow.CreateInput) { in.Items = nil },
			wantErr: domainerrors.ErrEmptyRequestItems,
		},
		{
			name:    "zero quantity",
			who:     alice,
			mutate:  func(in *requestflow.CreateInput) { in.Items[0].Quantity = 0 },
			wantErr: domainerrors.ErrInvalidQuantity,
		},
		{
			name:    "missing district",
			who:     alice,
			mutate:  func(in *requestflow.CreateInput) { in.District = " " },
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown district",
			who:     alice,
			mutate:  func(in *requestflow.CreateInput) { in.District = "Atlantis" },
			wantErr: domainerrors.ErrDistrictNotFound,
		},
		{
			name:    "unknown food item",
			who:     alice,
			mutate:  func(in *requestflow.CreateInput) { in.Items[0].FoodItemID = 999 },
			wantErr: domainerrors.ErrFoodItemNotFound,
		},
		{
			name:    "operator may not request",
			who:     testutil.Principal(fx.world.KLOperator),
			mutate:  func(*requestflow.CreateInput) {},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "org admin may not request",
			who:     testutil.Principal(fx.world.Admin),
			mutate:  func(*requestflow.CreateInput) {},
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fx.riceIn(fx.world.KualaLumpur.Name)
			tt.mutate(&in)

			_, err := fx.flow.Create(ctx, fx.uow, tt.who, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	all, err := fx.uow.Requests().List(ctx, entity.RequestScope{All: true}, entity.RequestFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFlow_Create_RetriesTrackingCollision(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	taken := uuid.MustParse("abcdef00-0000-4000-8000-000000000000")
	fresh := uuid.MustParse("12345600-0000-4000-8000-000000000000")
	sequence := []uuid.UUID{taken, taken, fresh}
	source := func() uuid.UUID {
		next := sequence[0]
		sequence = sequence[1:]

		return next
	}
	fx.flow = requestflow.New(tracking.NewGeneratorWithSource(source, 3), testutil.Clock)

	first, err := fx.flow.Create(ctx, fx.uow, testutil.Principal(fx.world.Alice), fx.riceIn(fx.world.KualaLumpur.Name))
	require.NoError(t, err)
	assert.Equal(t, "B40-ABCDEF", first.TrackingNumber)

	second, err := fx.flow.Create(ctx, fx.uow, testutil.Principal(fx.world.Bob), fx.riceIn(fx.world.KualaLumpur.Name))
	require.NoError(t, err)
	assert.Equal(t, "B40-123456", second.TrackingNumber)
}

func TestFlow_CreateGuest_ReusesActor(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	in := requestflow.GuestInput{NationalID: " 900101-14-5678 ", CreateInput: fx.riceIn(fx.world.Penang.Name)}
	in.Items[0].Quantity = 0

	first, err := fx.flow.CreateGuest(ctx, fx.uow, in)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Items[0].Quantity, "guest line items default to one unit")

	second, err := fx.flow.CreateGuest(ctx, fx.uow, in)
	require.NoError(t, err)

	assert.Equal(t, first.RequesterID, second.RequesterID)
	assert.NotEqual(t, first.TrackingNumber, second.TrackingNumber)

	guest, err := fx.uow.Actors().FindByUsername(ctx, "guest_900101-14-5678")
	require.NoError(t, err)
	assert.Equal(t, first.RequesterID, guest.ID)
	assert.Equal(t, entity.RoleRecipient, guest.Role)
}

func TestFlow_CreateGuest_RejectsInactiveGuest(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	guest := entity.NewGuestActor("770303-08-2222", testutil.Now)
	guest.Active = false
	require.NoError(t, fx.uow.Actors().Create(ctx, guest))

	in := requestflow.GuestInput{NationalID: "770303-08-2222", CreateInput: fx.riceIn(fx.world.Penang.Name)}
	_, err := fx.flow.CreateGuest(ctx, fx.uow, in)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindForbidden))

	requests, err := fx.uow.Requests().List(ctx, entity.RequestScope{All: true}, entity.RequestFilter{})
	require.NoError(t, err)
	for _, r := range requests {
		assert.NotEqual(t, guest.ID, r.RequesterID)
	}
}

func TestFlow_CreateGuest_RequiresNationalID(t *testing.T) {
	fx := createTestFlow(t)

	_, err := fx.flow.CreateGuest(context.Background(), fx.uow, requestflow.GuestInput{
		NationalID:  "   ",
		CreateInput: fx.riceIn(fx.world.Penang.Name),
	})
	assert.ErrorIs(t, err, domainerrors.ErrNationalIDRequired)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestFlow_CreateGuest_RollsBackActorOnFailure(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()
	tm := fx.world.Store.TransactionManager()

	in := requestflow.GuestInput{NationalID: "880202-10-1111", CreateInput: fx.riceIn("Atlantis")}
	err := tm.Execute(ctx, func(uow repository.RepositoryFactory) error {
		_, err := fx.flow.CreateGuest(ctx, uow, in)

		return err
	})
	require.ErrorIs(t, err, domainerrors.ErrDistrictNotFound)

	_, err = fx.uow.Actors().FindByUsername(ctx, entity.GuestUsername("880202-10-1111"))
	assert.ErrorIs(t, err, domainerrors.ErrActorNotFound)
}

func TestFlow_RecipientIsolation(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	aliceReq := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)
	bobReq := fx.create(t, fx.world.Bob, fx.world.KualaLumpur.Name)

	got, err := fx.flow.Get(ctx, fx.uow, testutil.Principal(fx.world.Alice), aliceReq.ID)
	require.NoError(t, err)
	assert.Equal(t, aliceReq.ID, got.ID)

	_, err = fx.flow.Get(ctx, fx.uow, testutil.Principal(fx.world.Alice), bobReq.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	list, err := fx.flow.List(ctx, fx.uow, testutil.Principal(fx.world.Alice), entity.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, aliceReq.ID, list[0].ID)

	_, err = fx.flow.Get(ctx, fx.uow, testutil.Principal(fx.world.Alice), 999)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestFlow_OperatorVisibility(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()
	klOperator := testutil.Principal(fx.world.KLOperator)

	klPending := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)
	pgPending := fx.create(t, fx.world.Alice, fx.world.Penang.Name)
	pgAssignedToKL := fx.create(t, fx.world.Bob, fx.world.Penang.Name)
	fx.assign(t, pgAssignedToKL.ID, fx.world.KLFoodBank)
	klAssignedToPG := fx.create(t, fx.world.Bob, fx.world.KualaLumpur.Name)
	fx.assign(t, klAssignedToPG.ID, fx.world.PGFoodBank)

	_, err := fx.flow.Get(ctx, fx.uow, klOperator, klPending.ID)
	require.NoError(t, err)
	_, err = fx.flow.Get(ctx, fx.uow, klOperator, pgAssignedToKL.ID)
	require.NoError(t, err)

	_, err = fx.flow.Get(ctx, fx.uow, klOperator, pgPending.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	_, err = fx.flow.Get(ctx, fx.uow, klOperator, klAssignedToPG.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "assigned elsewhere is no longer pending")

	list, err := fx.flow.List(ctx, fx.uow, klOperator, entity.RequestFilter{})
	require.NoError(t, err)
	ids := make([]int64, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []int64{klPending.ID, pgAssignedToKL.ID}, ids)

	list, err = fx.flow.List(ctx, fx.uow, klOperator, entity.RequestFilter{Status: entity.StatusAssigned})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pgAssignedToKL.ID, list[0].ID)

	_, err = fx.flow.List(ctx, fx.uow, testutil.Principal(fx.world.Unassigned), entity.RequestFilter{})
	assert.ErrorIs(t, err, domainerrors.ErrFoodBankNotFound)
}

func TestFlow_List_AdminSeesAllNewestFirst(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	first := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)
	second := fx.create(t, fx.world.Bob, fx.world.Penang.Name)

	list, err := fx.flow.List(ctx, fx.uow, testutil.Principal(fx.world.Admin), entity.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	list, err = fx.flow.List(ctx, fx.uow, testutil.Principal(fx.world.Admin), entity.RequestFilter{District: fx.world.Penang.Name})
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = fx.flow.List(ctx, fx.uow, testutil.Principal(fx.world.Admin), entity.RequestFilter{Status: "Lost"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestFlow_Update_Lifecycle(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)

	assigned := fx.assign(t, req.ID, fx.world.KLFoodBank)
	assert.Equal(t, entity.StatusAssigned, assigned.Status)
	require.NotNil(t, assigned.AssignedToID)
	assert.Equal(t, fx.world.KLFoodBank.ID, *assigned.AssignedToID)

	fulfilled, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.KLOperator), req.ID,
		requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, fulfilled.Status)
	require.NotNil(t, fulfilled.FulfilledAt)
	assert.Equal(t, testutil.Now, *fulfilled.FulfilledAt)

	stored, err := fx.uow.Requests().FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, stored.Status)
	assert.Equal(t, req.TrackingNumber, stored.TrackingNumber)
}

func TestFlow_Update_FulfilledIsTerminal(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)
	fx.assign(t, req.ID, fx.world.KLFoodBank)
	_, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.KLOperator), req.ID,
		requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)})
	require.NoError(t, err)

	attempts := map[string]struct {
		who *entity.Actor
		in  requestflow.UpdateInput
	}{
		"operator fulfils again": {fx.world.KLOperator, requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)}},
		"admin reassigns":        {fx.world.Admin, requestflow.UpdateInput{AssignedToID: int64Ptr(fx.world.PGFoodBank.ID)}},
		"admin clears":           {fx.world.Admin, requestflow.UpdateInput{AssignedToID: int64Ptr(0)}},
		"admin sets assigned":    {fx.world.Admin, requestflow.UpdateInput{Status: statusPtr(entity.StatusAssigned)}},
	}
	for name, a := range attempts {
		t.Run(name, func(t *testing.T) {
			_, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(a.who), req.ID, a.in)
			assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict), "got %v", err)
		})
	}

	stored, err := fx.uow.Requests().FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, stored.Status)
	assert.Equal(t, fx.world.KLFoodBank.ID, *stored.AssignedToID)
}

func TestFlow_Update_Authorization(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)

	tests := []struct {
		name string
		who  *entity.Actor
		in   requestflow.UpdateInput
	}{
		{"recipient assigns", fx.world.Alice, requestflow.UpdateInput{AssignedToID: int64Ptr(fx.world.KLFoodBank.ID)}},
		{"operator assigns", fx.world.KLOperator, requestflow.UpdateInput{AssignedToID: int64Ptr(fx.world.KLFoodBank.ID)}},
		{"operator fulfils unassigned", fx.world.KLOperator, requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)}},
		{"admin fulfils", fx.world.Admin, requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)}},
		{"recipient fulfils", fx.world.Alice, requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(tt.who), req.ID, tt.in)
			assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		})
	}

	fx.assign(t, req.ID, fx.world.KLFoodBank)

	_, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.PGOperator), req.ID,
		requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "only the assigned bank fulfils")

	_, err = fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.KLOperator), req.ID,
		requestflow.UpdateInput{Status: statusPtr(entity.StatusPending)})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden, "operators may only fulfil")

	stored, err := fx.uow.Requests().FindByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, stored.Status)
}

func TestFlow_Update_NotFoundBeforeForbidden(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	_, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.Alice), 999,
		requestflow.UpdateInput{AssignedToID: int64Ptr(fx.world.KLFoodBank.ID)})
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)
	_, err = fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.Alice), req.ID,
		requestflow.UpdateInput{AssignedToID: int64Ptr(999)})
	assert.ErrorIs(t, err, domainerrors.ErrFoodBankNotFound)
}

func TestFlow_Update_AssignmentThreshold(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()
	admin := testutil.Principal(fx.world.Admin)

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)

	cleared, err := fx.flow.Update(ctx, fx.uow, admin, req.ID, requestflow.UpdateInput{AssignedToID: int64Ptr(0)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, cleared.Status, "non-positive ids do not force Assigned")
	assert.Nil(t, cleared.AssignedToID)

	fx.assign(t, req.ID, fx.world.KLFoodBank)
	reassigned := fx.assign(t, req.ID, fx.world.PGFoodBank)
	assert.Equal(t, entity.StatusAssigned, reassigned.Status)
	assert.Equal(t, fx.world.PGFoodBank.ID, *reassigned.AssignedToID)

	cleared, err = fx.flow.Update(ctx, fx.uow, admin, req.ID, requestflow.UpdateInput{AssignedToID: int64Ptr(-1)})
	require.NoError(t, err)
	assert.Nil(t, cleared.AssignedToID)
	assert.Equal(t, entity.StatusAssigned, cleared.Status)
}

func TestFlow_Update_AssignmentAppliedBeforeStatus(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)

	updated, err := fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.Admin), req.ID, requestflow.UpdateInput{
		Status:       statusPtr(entity.StatusAssigned),
		AssignedToID: int64Ptr(fx.world.KLFoodBank.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAssigned, updated.Status)

	other := fx.create(t, fx.world.Bob, fx.world.KualaLumpur.Name)
	_, err = fx.flow.Update(ctx, fx.uow, testutil.Principal(fx.world.Admin), other.ID,
		requestflow.UpdateInput{Status: statusPtr(entity.StatusAssigned)})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestFlow_Update_RequiresAField(t *testing.T) {
	fx := createTestFlow(t)
	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)

	_, err := fx.flow.Update(context.Background(), fx.uow, testutil.Principal(fx.world.Admin), req.ID, requestflow.UpdateInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.flow.Update(context.Background(), fx.uow, testutil.Principal(fx.world.Admin), req.ID,
		requestflow.UpdateInput{Status: statusPtr("Shipped")})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestFlow_Track(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()

	req := fx.create(t, fx.world.Alice, fx.world.KualaLumpur.Name)

	info, err := fx.flow.Track(ctx, fx.uow, req.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, info.Status)
	assert.Nil(t, info.FoodBank)
	assert.Equal(t, []entity.TrackedItem{{Name: "Rice", Quantity: 1}}, info.Items)

	_, err = fx.flow.Track(ctx, fx.uow, "B40-000000")
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)

	_, err = fx.flow.Track(ctx, fx.uow, "not-a-tracking-number")
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

// TestFlow_KualaLumpurScenario walks a request from stock intake to public tracking.
func TestFlow_KualaLumpurScenario(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()
	book := ledger.New(testutil.Clock)
	operator := testutil.Principal(fx.world.KLOperator)
	tm := fx.world.Store.TransactionManager()

	for range 2 {
		err := tm.Execute(ctx, func(uow repository.RepositoryFactory) error {
			_, err := book.Add(ctx, uow, operator, ledger.Entry{
				FoodBankID: fx.world.KLFoodBank.ID,
				FoodItemID: fx.world.Rice.ID,
				Quantity:   50,
			})

			return err
		})
		require.NoError(t, err)
	}
	record, err := fx.uow.Inventory().FindByPair(ctx, fx.world.KLFoodBank.ID, fx.world.Rice.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, record.Quantity)

	var req *entity.Request
	err = tm.Execute(ctx, func(uow repository.RepositoryFactory) error {
		var err error
		req, err = fx.flow.Create(ctx, uow, testutil.Principal(fx.world.Alice), fx.riceIn(fx.world.KualaLumpur.Name))

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, req.Status)
	assert.Regexp(t, trackingPattern, req.TrackingNumber)

	assigned := fx.assign(t, req.ID, fx.world.KLFoodBank)
	assert.Equal(t, entity.StatusAssigned, assigned.Status)

	fulfilled, err := fx.flow.Update(ctx, fx.uow, operator, req.ID,
		requestflow.UpdateInput{Status: statusPtr(entity.StatusFulfilled)})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, fulfilled.Status)
	assert.NotNil(t, fulfilled.FulfilledAt)

	info, err := fx.flow.Track(ctx, fx.uow, req.TrackingNumber)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFulfilled, info.Status)
	require.NotNil(t, info.FoodBank)
	assert.Equal(t, "KL Food Bank", info.FoodBank.Name)
	assert.Equal(t, fx.world.KLFoodBank.ContactInfo, info.FoodBank.ContactInfo)
}

func TestFlow_Create_StoreFailureSurfaces(t *testing.T) {
	fx := createTestFlow(t)
	ctx := context.Background()
	boom := errors.New("store unavailable")
	repos := mockRepo.NewMockRepositoryFactory(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)

	repos.EXPECT().Districts().Return(fx.uow.Districts())
	repos.EXPECT().FoodItems().Return(fx.uow.FoodItems())
	repos.EXPECT().Requests().Return(requestRepo)
	requestRepo.EXPECT().
		TrackingNumberExists(mock.Anything, mock.AnythingOfType("string")).
		Return(false, boom).
		Once()

	fx.flow = requestflow.New(tracking.NewGenerator(1), testutil.Clock)
	_, err := fx.flow.Create(ctx, repos, testutil.Principal(fx.world.Alice), fx.riceIn(fx.world.KualaLumpur.Name))
	assert.ErrorIs(t, err, boom)
}
