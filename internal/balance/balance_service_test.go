package balance_test

import (
	"context"
	"testing"
	"time"

	"siap-cuti/internal/balance"
	balanceerrors "siap-cuti/internal/balance/errors"
	balanceMock "siap-cuti/internal/balance/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T, now time.Time) (balance.Service, *balanceMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := balanceMock.NewMockRepository(ctrl)
	jakarta := time.FixedZone("WIB", 7*3600)
	svc := balance.NewService(repo, jakarta, zap.NewNop(), balance.WithClock(func() time.Time { return now }))
	return svc, repo
}

func TestService_CurrentYear_UsesConfiguredZone(t *testing.T) {
	// 31 Dec 20:00 UTC is already 1 Jan in Jakarta.
	svc, _ := newService(t, time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC))

	assert.Equal(t, 2025, svc.CurrentYear())
}

func TestService_GetForYear(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("existing row", func(t *testing.T) {
		svc, repo := newService(t, time.Now())
		repo.EXPECT().FindByUserAndYear(ctx, userID, 2024).Return(&balance.LeaveBalance{TotalDays: 12, UsedDays: 10}, nil)

		b, err := svc.GetForYear(ctx, userID, 2024)

		assert.NoError(t, err)
		assert.Equal(t, 2, b.Remaining())
	})

	t.Run("missing row uses default allotment", func(t *testing.T) {
		svc, repo := newService(t, time.Now())
		repo.EXPECT().FindByUserAndYear(ctx, userID, 2024).Return(nil, gorm.ErrRecordNotFound)

		b, err := svc.GetForYear(ctx, userID, 2024)

		assert.NoError(t, err)
		assert.Equal(t, 12, b.TotalDays)
		assert.Equal(t, 0, b.UsedDays)
		assert.Equal(t, 12, b.Remaining())
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		svc, repo := newService(t, time.Now())
		repo.EXPECT().FindByUserAndYear(ctx, userID, 2024).Return(nil, assert.AnError)

		_, err := svc.GetForYear(ctx, userID, 2024)

		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("invalid year", func(t *testing.T) {
		svc, _ := newService(t, time.Now())

		_, err := svc.GetForYear(ctx, userID, 0)

		assert.ErrorIs(t, err, balanceerrors.ErrInvalidYear)
	})
}

func TestService_Reconcile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("stores sum of approved durations", func(t *testing.T) {
		svc, repo := newService(t, time.Now())
		gomock.InOrder(
			repo.EXPECT().SumApprovedDays(ctx, userID, 2024).Return(7, nil),
			repo.EXPECT().UpsertUsedDays(ctx, userID, 2024, 7).Return(nil),
		)

		res, err := svc.Reconcile(ctx, userID, 2024)

		assert.NoError(t, err)
		assert.Equal(t, 7, res.UsedDays)
	})

	t.Run("malformed user id", func(t *testing.T) {
		svc, _ := newService(t, time.Now())

		_, err := svc.Reconcile(ctx, "nope", 2024)

		assert.ErrorIs(t, err, balanceerrors.ErrInvalidUserID)
	})

	t.Run("sum failure skips upsert", func(t *testing.T) {
		svc, repo := newService(t, time.Now())
		repo.EXPECT().SumApprovedDays(ctx, userID, 2024).Return(0, assert.AnError)

		_, err := svc.Reconcile(ctx, userID, 2024)

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_ReconcileYear_ContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService(t, time.Now())
	ok1, bad, ok2 := uuid.NewString(), uuid.NewString(), uuid.NewString()

	repo.EXPECT().ListUserIDsWithLeave(ctx, 2024).Return([]string{ok1, bad, ok2}, nil)
	repo.EXPECT().SumApprovedDays(ctx, ok1, 2024).Return(3, nil)
	repo.EXPECT().UpsertUsedDays(ctx, ok1, 2024, 3).Return(nil)
	repo.EXPECT().SumApprovedDays(ctx, bad, 2024).Return(0, assert.AnError)
	repo.EXPECT().SumApprovedDays(ctx, ok2, 2024).Return(0, nil)
	repo.EXPECT().UpsertUsedDays(ctx, ok2, 2024, 0).Return(nil)

	updated, err := svc.ReconcileYear(ctx, 2024)

	assert.Equal(t, 2, updated)
	assert.ErrorIs(t, err, assert.AnError)
}
