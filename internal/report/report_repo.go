package report

import (
	"context"
	"time"

	"siap-cuti/internal/domain"

	"gorm.io/gorm"
)

// StatusRow is the minimal projection the monthly chart needs.
type StatusRow struct {
	Status    string
	CreatedAt time.Time
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	CountMembers(ctx context.Context) (int64, error)
	// CountCreatedSince counts requests created at or after since; an empty status counts all.
	CountCreatedSince(ctx context.Context, since time.Time, status string) (int64, error)
	RecentPending(ctx context.Context, limit int) ([]RecentRequest, error)
	StatusRowsSince(ctx context.Context, since time.Time) ([]StatusRow, error)
	AnnualRecap(ctx context.Context, year int, query string, offset, limit int) ([]AnnualRow, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("profiles").
		Where("role = ?", domain.RoleMember).
		Count(&count).Error
	return count, err
}

func (r *repository) CountCreatedSince(ctx context.Context, since time.Time, status string) (int64, error) {
	q := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("created_at >= ?", since)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *repository) RecentPending(ctx context.Context, limit int) ([]RecentRequest, error) {
	var rows []RecentRequest
	err := r.db.WithContext(ctx).
		Table("leave_requests AS lr").
		Select("lr.id::text AS id, lr.title, lr.created_at, COALESCE(p.name, '') AS name, p.avatar_url").
		Joins("LEFT JOIN profiles p ON p.id = lr.user_id").
		Where("lr.status = ?", domain.LeaveStatusPending).
		Order("lr.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) StatusRowsSince(ctx context.Context, since time.Time) ([]StatusRow, error) {
	var rows []StatusRow
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("status, created_at").
		Where("created_at >= ?", since).
		Scan(&rows).Error
	return rows, err
}

// AnnualRecap lists members ordered by name with their balance for year.
// Members without a balance row get the default allotment.
func (r *repository) AnnualRecap(ctx context.Context, year int, query string, offset, limit int) ([]AnnualRow, int64, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	base := r.db.WithContext(ctx).
		Table("profiles AS p").
		Where("p.role = ?", domain.RoleMember)
	if query != "" {
		like := "%" + query + "%"
		base = base.Where("(p.name ILIKE ? OR p.id_pjlp ILIKE ?)", like, like)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []AnnualRow
	err := base.
		Select(`p.id::text AS user_id, p.name, p.id_pjlp, p.avatar_url,
			COALESCE(b.total_days, ?) AS total_days,
			COALESCE(b.used_days, 0) AS used_days,
			(SELECT COUNT(*) FROM leave_requests lr
				WHERE lr.user_id = p.id AND lr.status = ?
				AND lr.start_date >= ? AND lr.start_date < ?) AS approved_count`,
			domain.DefaultAnnualLeaveDays, domain.LeaveStatusApproved, start, end,
		).
		Joins("LEFT JOIN leave_balances b ON b.user_id = p.id AND b.year = ?", year).
		Order("p.name ASC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	for i := range rows {
		rows[i].RemainingDays = rows[i].TotalDays - rows[i].UsedDays
	}
	return rows, total, nil
}
