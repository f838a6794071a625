package balance

import (
	"time"

	"github.com/google/uuid"
)

type LeaveBalance struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_leave_balances_user_year"`
	Year      int       `gorm:"column:year;not null;uniqueIndex:idx_leave_balances_user_year"`
	TotalDays int       `gorm:"column:total_days;not null;default:12"`
	UsedDays  int       `gorm:"column:used_days;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// Balance is the effective allotment for one user and year.
type Balance struct {
	UserID    string
	Year      int
	TotalDays int
	UsedDays  int
}

func (b Balance) Remaining() int {
	return b.TotalDays - b.UsedDays
}
