package balance

import (
	"context"
	"errors"
	"time"

	balanceerrors "siap-cuti/internal/balance/errors"
	"siap-cuti/internal/domain"
	"siap-cuti/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_service.go -destination=mock/balance_service_mock.go -package=mock
type Service interface {
	// GetForYear falls back to the default allotment when no row exists yet.
	GetForYear(ctx context.Context, userID string, year int) (Balance, error)
	CurrentYear() int
	Reconcile(ctx context.Context, userID string, year int) (ReconcileResult, error)
	ReconcileYear(ctx context.Context, year int) (int, error)
}

type service struct {
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(repo Repository, loc *time.Location, logger *zap.Logger, opts ...Option) Service {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.L()
	}
	s := &service{
		repo:   repo,
		loc:    loc,
		now:    time.Now,
		logger: logger.Named("balance.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) CurrentYear() int {
	return s.now().In(s.loc).Year()
}

func (s *service) GetForYear(ctx context.Context, userID string, year int) (Balance, error) {
	if year < 1 {
		return Balance{}, balanceerrors.ErrInvalidYear
	}

	row, err := s.repo.FindByUserAndYear(ctx, userID, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Balance{
				UserID:    userID,
				Year:      year,
				TotalDays: domain.DefaultAnnualLeaveDays,
				UsedDays:  0,
			}, nil
		}
		contextutil.GetLogger(ctx, s.logger).Error("failed to load leave balance",
			zap.String("user_id", userID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return Balance{}, err
	}

	return Balance{
		UserID:    userID,
		Year:      year,
		TotalDays: row.TotalDays,
		UsedDays:  row.UsedDays,
	}, nil
}

// Reconcile recomputes used_days from the approved requests starting in year.
func (s *service) Reconcile(ctx context.Context, userID string, year int) (ReconcileResult, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(userID); err != nil {
		return ReconcileResult{}, balanceerrors.ErrInvalidUserID
	}
	if year < 1 {
		return ReconcileResult{}, balanceerrors.ErrInvalidYear
	}

	used, err := s.repo.SumApprovedDays(ctx, userID, year)
	if err != nil {
		l.Error("failed to sum approved leave", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return ReconcileResult{}, err
	}

	if err := s.repo.UpsertUsedDays(ctx, userID, year, used); err != nil {
		l.Error("failed to store used days", zap.String("user_id", userID), zap.Int("year", year), zap.Error(err))
		return ReconcileResult{}, err
	}

	l.Debug("balance reconciled", zap.String("user_id", userID), zap.Int("year", year), zap.Int("used_days", used))
	return ReconcileResult{UserID: userID, Year: year, UsedDays: used}, nil
}

// ReconcileYear reconciles every user with leave activity in year and returns
// how many were updated. It keeps going past individual failures.
func (s *service) ReconcileYear(ctx context.Context, year int) (int, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	ids, err := s.repo.ListUserIDsWithLeave(ctx, year)
	if err != nil {
		return 0, err
	}

	var firstErr error
	updated := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		if _, err := s.Reconcile(ctx, id, year); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		updated++
	}

	l.Info("yearly balance reconciliation finished",
		zap.Int("year", year),
		zap.Int("users", len(ids)),
		zap.Int("updated", updated),
	)
	return updated, firstErr
}
