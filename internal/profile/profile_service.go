package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	profileerrors "siap-cuti/internal/profile/errors"
	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation = "23505"
	// bcrypt rejects longer input
	maxPasswordBytes = 72

	msgPasswordTooLong = "Password baru maksimal 72 karakter."
)

var validationMessages = map[string]string{
	"name.required":         "Nama lengkap harus diisi (minimal 3 karakter)",
	"name.min":              "Nama lengkap harus diisi (minimal 3 karakter)",
	"name.max":              "Nama lengkap maksimal 255 karakter",
	"id_pjlp.required":      "ID PJLP tidak boleh kosong",
	"id_pjlp.max":           "ID PJLP maksimal 50 karakter",
	"phone.min":             "Nomor HP tidak valid (minimal 10 digit)",
	"phone.max":             "Nomor HP maksimal 30 karakter",
	"new_password.required": "Password baru minimal 6 karakter.",
	"new_password.min":      "Password baru minimal 6 karakter.",
	"new_password.max":      msgPasswordTooLong,
}

//go:generate mockgen -source=profile_service.go -destination=mock/profile_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, userID string) (ProfileResponse, error)
	Update(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, validate: apperror.NewValidator(), logger: l}
}

func (s *service) find(ctx context.Context, userID string) (*Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, profileerrors.ErrProfileNotFound
	}
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profileerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (ProfileResponse, error) {
	p, err := s.find(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	req.Name = strings.TrimSpace(req.Name)
	req.IDPJLP = strings.TrimSpace(req.IDPJLP)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := s.validate.Struct(req); err != nil {
		return ProfileResponse{}, apperror.MapValidationErrors(err, validationMessages)
	}

	p, err := s.find(ctx, userID)
	if err != nil {
		return ProfileResponse{}, err
	}

	p.Name = req.Name
	p.IDPJLP = req.IDPJLP
	p.Phone = nil
	if req.Phone != "" {
		phone := req.Phone
		p.Phone = &phone
	}

	if err := s.repo.Update(ctx, p); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ProfileResponse{}, profileerrors.ErrIDPJLPTaken
		}
		l.Error("failed to update profile", zap.String("user_id", userID), zap.Error(err))
		return ProfileResponse{}, err
	}

	l.Info("profile updated", zap.String("user_id", userID))
	return mapToResponse(*p), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := s.validate.Struct(req); err != nil {
		return apperror.MapValidationErrors(err, validationMessages)
	}
	if len(req.NewPassword) > maxPasswordBytes {
		return apperror.Validation(map[string][]string{"new_password": {msgPasswordTooLong}})
	}
	if req.NewPassword != req.ConfirmPassword {
		return profileerrors.ErrPasswordMismatch
	}

	p, err := s.find(ctx, userID)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash new password", zap.Error(err))
		return err
	}

	if err := s.repo.UpdatePassword(ctx, p.ID.String(), string(hashed)); err != nil {
		l.Error("failed to update password", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		Role:      p.Role,
		Name:      p.Name,
		IDPJLP:    p.IDPJLP,
		Email:     p.Email,
		Phone:     p.Phone,
		AvatarURL: p.AvatarURL,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
