package tracking

import (
	"context"
	"errors"
	"testing"

	domainerrors "foodaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate_Format(t *testing.T) {
	gen := NewGenerator(0)

	for range 200 {
		tn := gen.Generate()
		assert.True(t, Validate(tn), "unexpected tracking number %q", tn)
		assert.Len(t, tn, len(Prefix)+randomLength)
	}
}

func TestGenerator_Generate_UsesLeadingHexOfUUID(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000000")
	gen := NewGeneratorWithSource(func() uuid.UUID { return id }, 1)

	assert.Equal(t, "B40-A1B2C3", gen.Generate())
}

func TestGenerator_GenerateUnique_RetriesOnCollision(t *testing.T) {
	ids := []uuid.UUID{
		uuid.MustParse("aaaaaa00-0000-4000-8000-000000000000"),
		uuid.MustParse("bbbbbb00-0000-4000-8000-000000000000"),
	}
	calls := 0
	gen := NewGeneratorWithSource(func() uuid.UUID {
		id := ids[calls]
		calls++

		return id
	}, 3)

	tn, err := gen.GenerateUnique(context.Background(), func(_ context.Context, candidate string) (bool, error) {
		return candidate == "B40-AAAAAA", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "B40-BBBBBB", tn)
	assert.Equal(t, 2, calls)
}

func TestGenerator_GenerateUnique_Exhausted(t *testing.T) {
	gen := NewGenerator(2)

	tn, err := gen.GenerateUnique(context.Background(), func(context.Context, string) (bool, error) {
		return true, nil
	})

	assert.Empty(t, tn)
	assert.ErrorIs(t, err, domainerrors.ErrTrackingNumberExhausted)
}

func TestGenerator_GenerateUnique_StoreError(t *testing.T) {
	gen := NewGenerator(2)
	storeErr := errors.New("connection reset")

	_, err := gen.GenerateUnique(context.Background(), func(context.Context, string) (bool, error) {
		return false, storeErr
	})

	assert.ErrorIs(t, err, storeErr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"B40-0A1B2C", true},
		{"B40-FFFFFF", true},
		{"B40-0a1b2c", false},
		{"B40-0A1B2", false},
		{"B40-0A1B2C3", false},
		{"B41-0A1B2C", false},
		{"B40-GGGGGG", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.in))
		})
	}
}
