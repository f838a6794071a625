package leave

import (
	"time"

	"siap-cuti/internal/domain"

	"github.com/google/uuid"
)

type Leave struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_leave_requests_user_start"`
	Title        string    `gorm:"column:title;type:varchar(255);not null"`
	Reason       string    `gorm:"column:reason;type:text;not null"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null;index:idx_leave_requests_user_start"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	Duration     int       `gorm:"column:duration;not null"`
	Status       string    `gorm:"column:status;type:varchar(20);not null;default:'Menunggu';index:idx_leave_requests_status_created"`
	IsReadByUser bool      `gorm:"column:is_read_by_user;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;index:idx_leave_requests_status_created"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`

	// Requester is the owning profile, loaded for admin lists and notifications.
	Requester *Requester `gorm:"foreignKey:UserID;references:ID"`
}

func (Leave) TableName() string {
	return "leave_requests"
}

type Requester struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	IDPJLP    string    `gorm:"column:id_pjlp"`
	Email     string    `gorm:"column:email"`
	AvatarURL *string   `gorm:"column:avatar_url"`
}

func (Requester) TableName() string {
	return "profiles"
}

// Persisted status labels.
const (
	StatusPending  = domain.LeaveStatusPending
	StatusApproved = domain.LeaveStatusApproved
	StatusRejected = domain.LeaveStatusRejected
)
