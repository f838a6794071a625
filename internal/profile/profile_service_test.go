package profile_test

import (
	"context"
	"strings"
	"testing"

	"siap-cuti/internal/profile"
	profileerrors "siap-cuti/internal/profile/errors"
	profileMock "siap-cuti/internal/profile/mock"
	"siap-cuti/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := profileMock.NewMockRepository(ctrl)
	svc := profile.NewService(repo)
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id.String()).Return(&profile.Profile{
			ID: id, Role: "member", Name: "Budi Santoso", IDPJLP: "PJLP-001",
		}, nil)

		res, err := svc.GetMe(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, "Budi Santoso", res.Name)
		assert.Equal(t, "PJLP-001", res.IDPJLP)
	})

	t.Run("not found", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMe(ctx, id.String())

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetMe(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := profileMock.NewMockRepository(ctrl)
	svc := profile.NewService(repo)
	ctx := context.Background()
	id := uuid.New()

	t.Run("validation errors are keyed by field", func(t *testing.T) {
		_, err := svc.Update(ctx, id.String(), profile.UpdateProfileRequest{Name: " Bo ", IDPJLP: "", Phone: "0812"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		fields := appErr.Details.(map[string][]string)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "id_pjlp")
		assert.Equal(t, []string{"Nomor HP tidak valid (minimal 10 digit)"}, fields["phone"])
	})

	t.Run("values longer than columns are rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, id.String(), profile.UpdateProfileRequest{
			Name:   strings.Repeat("a", 256),
			IDPJLP: strings.Repeat("9", 51),
			Phone:  strings.Repeat("1", 31),
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		fields := appErr.Details.(map[string][]string)
		assert.Equal(t, []string{"Nama lengkap maksimal 255 karakter"}, fields["name"])
		assert.Equal(t, []string{"ID PJLP maksimal 50 karakter"}, fields["id_pjlp"])
		assert.Equal(t, []string{"Nomor HP maksimal 30 karakter"}, fields["phone"])
	})

	t.Run("success trims and clears empty phone", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id.String()).Return(&profile.Profile{ID: id, Name: "Old"}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *profile.Profile) error {
			assert.Equal(t, "Siti Aminah", p.Name)
			assert.Equal(t, "PJLP-002", p.IDPJLP)
			assert.Nil(t, p.Phone)
			return nil
		})

		res, err := svc.Update(ctx, id.String(), profile.UpdateProfileRequest{Name: "  Siti Aminah ", IDPJLP: "PJLP-002"})

		assert.NoError(t, err)
		assert.Equal(t, "Siti Aminah", res.Name)
	})

	t.Run("duplicate id_pjlp", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id.String()).Return(&profile.Profile{ID: id}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := svc.Update(ctx, id.String(), profile.UpdateProfileRequest{Name: "Siti Aminah", IDPJLP: "PJLP-003", Phone: "081234567890"})

		assert.ErrorIs(t, err, profileerrors.ErrIDPJLPTaken)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := profileMock.NewMockRepository(ctrl)
	svc := profile.NewService(repo)
	ctx := context.Background()
	id := uuid.New()

	t.Run("too short", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id.String(), profile.ChangePasswordRequest{NewPassword: "123", ConfirmPassword: "123"})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
	})

	t.Run("longer than bcrypt accepts", func(t *testing.T) {
		for _, pw := range []string{strings.Repeat("a", 73), strings.Repeat("é", 40)} {
			err := svc.ChangePassword(ctx, id.String(), profile.ChangePasswordRequest{NewPassword: pw, ConfirmPassword: pw})

			var appErr *apperror.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, []string{"Password baru maksimal 72 karakter."}, appErr.Details.(map[string][]string)["new_password"])
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		err := svc.ChangePassword(ctx, id.String(), profile.ChangePasswordRequest{NewPassword: "secret1", ConfirmPassword: "secret2"})

		assert.ErrorIs(t, err, profileerrors.ErrPasswordMismatch)
	})

	t.Run("stores bcrypt hash", func(t *testing.T) {
		repo.EXPECT().FindByID(ctx, id.String()).Return(&profile.Profile{ID: id}, nil)
		repo.EXPECT().UpdatePassword(ctx, id.String(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
			return nil
		})

		err := svc.ChangePassword(ctx, id.String(), profile.ChangePasswordRequest{NewPassword: "secret1", ConfirmPassword: "secret1"})

		assert.NoError(t, err)
	})
}
