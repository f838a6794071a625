package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"siap-cuti/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	// LockByID loads the request with its requester and holds a row lock until the transaction ends.
	LockByID(ctx context.Context, id string) (*Leave, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) error
	FindHistory(ctx context.Context, userID string, year int) ([]Leave, error)
	ListYears(ctx context.Context, userID string) ([]int, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) (bool, error)
	FindAll(ctx context.Context, status string, offset, limit int) ([]Leave, int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.conn(ctx).Omit("Requester").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Preload("Requester").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) LockByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	if err != nil {
		return &l, err
	}

	var req Requester
	err = r.conn(ctx).First(&req, "id = ?", l.UserID).Error
	if err == nil {
		l.Requester = &req
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return &l, err
	}
	return &l, nil
}

// UpdateStatus also marks the request unread so the owner sees the decision.
func (r *repository) UpdateStatus(ctx context.Context, id, status string, at time.Time) error {
	return r.conn(ctx).
		Model(&Leave{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":          status,
			"is_read_by_user": false,
			"updated_at":      at,
		}).Error
}

func (r *repository) FindHistory(ctx context.Context, userID string, year int) ([]Leave, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	var leaves []Leave
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Where("start_date >= ? AND start_date < ?", start, end).
		Order("start_date DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) ListYears(ctx context.Context, userID string) ([]int, error) {
	var years []int
	err := r.conn(ctx).Raw(`
		SELECT DISTINCT EXTRACT(YEAR FROM start_date)::int AS year
		FROM leave_requests
		WHERE user_id = ?
		ORDER BY year DESC`, userID,
	).Scan(&years).Error
	return years, err
}

// CountUnread counts decided requests the owner has not opened yet.
func (r *repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Leave{}).
		Where("user_id = ?", userID).
		Where("is_read_by_user = ?", false).
		Where("status <> ?", domain.LeaveStatusPending).
		Count(&count).Error
	return count, err
}

func (r *repository) MarkRead(ctx context.Context, userID, id string) (bool, error) {
	res := r.conn(ctx).
		Model(&Leave{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read_by_user", true)
	return res.RowsAffected > 0, res.Error
}

func (r *repository) FindAll(ctx context.Context, status string, offset, limit int) ([]Leave, int64, error) {
	q := r.conn(ctx).Model(&Leave{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var leaves []Leave
	err := q.
		Preload("Requester").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&leaves).Error
	return leaves, total, err
}
