package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "siap-cuti/internal/auth/errors"
	"siap-cuti/internal/profile"
	"siap-cuti/internal/shared/contextutil"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, idPJLP, password string) (accessToken string, resp AuthResponse, err error)
}

type service struct {
	profiles profile.Repository
	secret   []byte
	expiry   time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(profiles profile.Repository, secret string, expiry time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		profiles: profiles,
		secret:   []byte(secret),
		expiry:   expiry,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Login(ctx context.Context, idPJLP, password string) (string, AuthResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	p, err := s.profiles.FindByIDPJLP(ctx, strings.TrimSpace(idPJLP))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			l.Error("failed to load profile for login", zap.Error(err))
			return "", AuthResponse{}, err
		}
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(p.ID.String(), p.Role)
	if err != nil {
		l.Error("failed to sign token", zap.Error(err))
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	l.Info("user logged in", zap.String("user_id", p.ID.String()), zap.String("role", p.Role))
	return token, AuthResponse{
		ID:     p.ID.String(),
		IDPJLP: p.IDPJLP,
		Name:   p.Name,
		Email:  p.Email,
		Role:   p.Role,
	}, nil
}

func (s *service) generateToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     s.now().Add(s.expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
