package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/vladimiradmaev/quantified-self/internal/errors"
)

func TestDayServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc := NewDayService(&fakeDayRepo{})

	_, err := svc.Create(ctx, Payload{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Contains(t, apperrors.MessageOf(err), `missing a "goal" property`)

	created, err := svc.Create(ctx, Payload{"goal": float64(2000)})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Equal(t, 2000, created[0].Goal)

	days, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, days, 1)
}

func TestDayServiceToday(t *testing.T) {
	ctx := context.Background()
	svc := NewDayService(&fakeDayRepo{})

	_, err := svc.Today(ctx)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))

	for _, goal := range []float64{1800, 2000, 2200} {
		_, err := svc.Create(ctx, Payload{"goal": goal})
		require.NoError(t, err)
	}

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(3), today.ID)
	assert.Equal(t, 2200, today.Goal)
}

func TestDayServiceTodayStoreError(t *testing.T) {
	svc := NewDayService(&fakeDayRepo{err: errStore})

	_, err := svc.Today(context.Background())
	assert.Equal(t, apperrors.ErrorTypeDatabase, apperrors.TypeOf(err))
}
