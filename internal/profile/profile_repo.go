package profile

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=profile_repo.go -destination=mock/profile_repo_mock.go -package=mock
type Repository interface {
	FindByID(ctx context.Context, id string) (*Profile, error)
	FindByIDPJLP(ctx context.Context, idPJLP string) (*Profile, error)
	Update(ctx context.Context, p *Profile) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByIDPJLP(ctx context.Context, idPJLP string) (*Profile, error) {
	var p Profile
	err := r.db.WithContext(ctx).First(&p, "id_pjlp = ?", idPJLP).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Profile) error {
	return r.db.WithContext(ctx).
		Model(&Profile{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":    p.Name,
			"id_pjlp": p.IDPJLP,
			"phone":   p.Phone,
		}).Error
}

func (r *repository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&Profile{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash).Error
}
