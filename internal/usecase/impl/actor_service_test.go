package impl

import (
	"context"
	"testing"

	"foodaid/internal/domain/entity"
	domainerrors "foodaid/internal/domain/errors"
	"foodaid/internal/domain/service"
	"foodaid/internal/testutil"
	"foodaid/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type actorServiceFixtures struct {
	service usecase.ActorUsecase
	world   *testutil.World
}

func createTestActorService(t *testing.T) actorServiceFixtures {
	world := testutil.NewWorld(t)

	return actorServiceFixtures{
		service: NewActorService(ActorServiceParams{
			TxManager: world.Store.TransactionManager(),
			Repos:     world.Store.Repositories(),
			Logger:    newDiscardLogger(),
		}),
		world: world,
	}
}

func TestActorService_Authenticate(t *testing.T) {
	fx := createTestActorService(t)
	ctx := context.Background()

	retired := &entity.Actor{Username: "retired", Role: entity.RoleFoodBankOperator, Active: false, CreatedAt: testutil.Now}
	require.NoError(t, fx.world.Store.Repositories().Actors().Create(ctx, retired))

	tests := []struct {
		name    string
		claims  *service.Claims
		want    entity.Principal
		wantErr error
	}{
		{
			name:   "active actor with matching role",
			claims: &service.Claims{ActorID: fx.world.KLOperator.ID, Role: entity.RoleFoodBankOperator},
			want:   testutil.Principal(fx.world.KLOperator),
		},
		{
			name:    "missing claims",
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name:    "unknown actor",
			claims:  &service.Claims{ActorID: 999, Role: entity.RoleRecipient},
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name:    "inactive actor",
			claims:  &service.Claims{ActorID: retired.ID, Role: entity.RoleFoodBankOperator},
			wantErr: usecase.ErrAuthenticationFailed,
		},
		{
			name:    "role no longer held",
			claims:  &service.Claims{ActorID: fx.world.Alice.ID, Role: entity.RoleOrgAdmin},
			wantErr: usecase.ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fx.service.Authenticate(ctx, tt.claims)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActorService_GetActor(t *testing.T) {
	fx := createTestActorService(t)
	ctx := context.Background()
	alice := testutil.Principal(fx.world.Alice)

	self, err := fx.service.GetActor(ctx, alice, fx.world.Alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", self.Username)

	_, err = fx.service.GetActor(ctx, alice, fx.world.Bob.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.GetActor(ctx, alice, 999)
	assert.ErrorIs(t, err, domainerrors.ErrActorNotFound)

	other, err := fx.service.GetActor(ctx, testutil.Principal(fx.world.Admin), fx.world.Bob.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRecipient, other.Role)

	me, err := fx.service.Me(ctx, testutil.Principal(fx.world.Admin))
	require.NoError(t, err)
	assert.Equal(t, fx.world.Admin.ID, me.ID)
}
