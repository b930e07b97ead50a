package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

func TestFoodServiceCreateThenGet(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(&fakeFoodRepo{})

	created, err := svc.Create(ctx, Payload{"name": "Avocado", "calories": float64(240)})
	require.NoError(t, err)
	require.Len(t, created, 1)

	got, err := svc.Get(ctx, created[0].ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Avocado", got[0].Name)
	assert.Equal(t, 240, got[0].Calories)
}

func TestFoodServiceCreateRejectsZeroCalories(t *testing.T) {
	svc := NewFoodService(&fakeFoodRepo{})

	_, err := svc.Create(context.Background(), Payload{"name": "Water", "calories": float64(0)})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestFoodServiceGetMissing(t *testing.T) {
	svc := NewFoodService(&fakeFoodRepo{})

	_, err := svc.Get(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	assert.Equal(t, "Could not find food with id 9", apperrors.MessageOf(err))
}

func TestFoodServiceListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(&fakeFoodRepo{})

	for _, name := range []string{"Apple", "Bread", "Cheese"} {
		_, err := svc.Create(ctx, Payload{"name": name, "calories": float64(100)})
		require.NoError(t, err)
	}

	first, err := svc.List(ctx)
	require.NoError(t, err)
	second, err := svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, first, 3)
	assert.Equal(t, "Cheese", first[0].Name)
	assert.Equal(t, first, second)
}

func TestFoodServiceUpdateReplacesValues(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(&fakeFoodRepo{})

	created, err := svc.Create(ctx, Payload{"name": "Toast", "calories": float64(80)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created[0].ID, Payload{"name": "Buttered toast", "calories": "150"})
	require.NoError(t, err)
	require.Len(t, updated, 1)

	got, err := svc.Get(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Buttered toast", got[0].Name)
	assert.Equal(t, 150, got[0].Calories)
}

func TestFoodServiceUpdateMissingField(t *testing.T) {
	svc := NewFoodService(&fakeFoodRepo{})

	_, err := svc.Update(context.Background(), 1, Payload{"name": "Toast"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestFoodServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(&fakeFoodRepo{})

	created, err := svc.Create(ctx, Payload{"name": "Pear", "calories": float64(100)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created[0].ID))

	_, err = svc.Get(ctx, created[0].ID)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))

	err = svc.Delete(ctx, created[0].ID)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}

func TestFoodServiceStoreErrors(t *testing.T) {
	ctx := context.Background()
	svc := NewFoodService(&fakeFoodRepo{err: errStore})

	_, err := svc.List(ctx)
	assert.Equal(t, apperrors.ErrorTypeDatabase, apperrors.TypeOf(err))
	assert.ErrorIs(t, err, errStore)

	_, err = svc.Create(ctx, Payload{"name": "Pear", "calories": float64(100)})
	assert.Equal(t, apperrors.ErrorTypeDatabase, apperrors.TypeOf(err))

	err = svc.Delete(ctx, 1)
	assert.Equal(t, apperrors.ErrorTypeDatabase, apperrors.TypeOf(err))
}
