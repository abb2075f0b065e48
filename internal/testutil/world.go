// Package testutil seeds an in-memory store with a small, realistic world
// for tests across packages.
package testutil

import (
	"context"
	"testing"
	"time"

	"foodaid/internal/domain/entity"
	"foodaid/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
)

// Now is the fixed instant used as the clock in tests.
var Now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// Clock returns Now.
func Clock() time.Time { return Now }

// World is a seeded store: two districts, two food items, an org admin, two
// operators each running a food bank in a different district, and two recipients.
type World struct {
	Store *memory.Store

	KualaLumpur *entity.District
	Penang      *entity.District

	Rice *entity.FoodItem
	Oil  *entity.FoodItem

	Admin      *entity.Actor
	KLOperator *entity.Actor
	PGOperator *entity.Actor
	Unassigned *entity.Actor
	Alice      *entity.Actor
	Bob        *entity.Actor

	KLFoodBank *entity.FoodBank
	PGFoodBank *entity.FoodBank
}

// NewWorld builds a fresh World.
func NewWorld(t *testing.T) *World {
	t.Helper()

	ctx := context.Background()
	w := &World{Store: memory.NewStore()}
	repos := w.Store.Repositories()

	w.KualaLumpur = &entity.District{Name: "Kuala Lumpur", State: "Federal Territory"}
	w.Penang = &entity.District{Name: "Penang", State: "Penang"}
	require.NoError(t, repos.Districts().Create(ctx, w.KualaLumpur))
	require.NoError(t, repos.Districts().Create(ctx, w.Penang))

	w.Rice = &entity.FoodItem{Name: "Rice", Icon: "🍚", Category: "Grains"}
	w.Oil = &entity.FoodItem{Name: "Cooking Oil", Icon: "🛢", Category: "Essentials"}
	require.NoError(t, repos.FoodItems().Create(ctx, w.Rice))
	require.NoError(t, repos.FoodItems().Create(ctx, w.Oil))

	w.Admin = w.actor(t, "admin", entity.RoleOrgAdmin)
	w.KLOperator = w.actor(t, "kl_operator", entity.RoleFoodBankOperator)
	w.PGOperator = w.actor(t, "pg_operator", entity.RoleFoodBankOperator)
	w.Unassigned = w.actor(t, "idle_operator", entity.RoleFoodBankOperator)
	w.Alice = w.actor(t, "alice", entity.RoleRecipient)
	w.Bob = w.actor(t, "bob", entity.RoleRecipient)

	w.KLFoodBank = &entity.FoodBank{
		Name:        "KL Food Bank",
		Location:    "Jalan Ampang",
		District:    w.KualaLumpur.Name,
		ContactInfo: "+60 3-1234 5678",
		OperatorID:  w.KLOperator.ID,
		CreatedAt:   Now,
	}
	w.PGFoodBank = &entity.FoodBank{
		Name:        "Penang Food Bank",
		Location:    "George Town",
		District:    w.Penang.Name,
		ContactInfo: "+60 4-1234 5678",
		OperatorID:  w.PGOperator.ID,
		CreatedAt:   Now,
	}
	require.NoError(t, repos.FoodBanks().Create(ctx, w.KLFoodBank))
	require.NoError(t, repos.FoodBanks().Create(ctx, w.PGFoodBank))

	return w
}

func (w *World) actor(t *testing.T, username string, role entity.Role) *entity.Actor {
	t.Helper()

	a := &entity.Actor{
		Username:  username,
		Email:     username + "@example.com",
		Role:      role,
		Active:    true,
		CreatedAt: Now,
	}
	require.NoError(t, w.Store.Repositories().Actors().Create(context.Background(), a))

	return a
}

// Principal returns the authenticated form of an actor.
func Principal(a *entity.Actor) entity.Principal {
	return entity.Principal{ActorID: a.ID, Role: a.Role}
}
