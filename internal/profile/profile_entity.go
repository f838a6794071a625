package profile

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:member"`
	Name         string    `gorm:"column:name;type:varchar(255)"`
	IDPJLP       string    `gorm:"column:id_pjlp;type:varchar(64);not null;uniqueIndex"`
	Email        string    `gorm:"column:email;type:text"`
	Phone        *string   `gorm:"column:phone;type:varchar(32)"`
	AvatarURL    *string   `gorm:"column:avatar_url;type:text"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
