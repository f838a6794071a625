package balance

import (
	"context"
	"time"

	"siap-cuti/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	FindByUserAndYear(ctx context.Context, userID string, year int) (*LeaveBalance, error)
	SumApprovedDays(ctx context.Context, userID string, year int) (int, error)
	UpsertUsedDays(ctx context.Context, userID string, year, usedDays int) error
	ListUserIDsWithLeave(ctx context.Context, year int) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserAndYear(ctx context.Context, userID string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND year = ?", userID, year).
		First(&b).Error
	return &b, err
}

func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func (r *repository) SumApprovedDays(ctx context.Context, userID string, year int) (int, error) {
	start, end := yearRange(year)

	var total int
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("COALESCE(SUM(duration), 0)").
		Where("user_id = ?", userID).
		Where("status = ?", domain.LeaveStatusApproved).
		Where("start_date >= ? AND start_date < ?", start, end).
		Scan(&total).Error
	return total, err
}

func (r *repository) UpsertUsedDays(ctx context.Context, userID string, year, usedDays int) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	row := LeaveBalance{
		UserID:    uid,
		Year:      year,
		TotalDays: domain.DefaultAnnualLeaveDays,
		UsedDays:  usedDays,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{"used_days", "updated_at"}),
		}).
		Create(&row).Error
}

// ListUserIDsWithLeave returns owners that have any request starting in the year,
// plus owners that already hold a balance row for it.
func (r *repository) ListUserIDsWithLeave(ctx context.Context, year int) ([]string, error) {
	start, end := yearRange(year)

	var ids []string
	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT user_id::text FROM leave_requests
		WHERE start_date >= ? AND start_date < ?
		UNION
		SELECT user_id::text FROM leave_balances WHERE year = ?`,
		start, end, year,
	).Scan(&ids).Error
	return ids, err
}
