package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"siap-cuti/internal/auth"
	autherrors "siap-cuti/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	loginFn func(ctx context.Context, idPJLP, password string) (string, auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, idPJLP, password string) (string, auth.AuthResponse, error) {
	return f.loginFn(ctx, idPJLP, password)
}

func setupAuthRouter(svc auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := auth.NewHandler(svc, false, 24*time.Hour)
	router.POST("/login", handler.Login)
	router.POST("/logout", handler.Logout)
	return router
}

func TestHandler_Login(t *testing.T) {
	t.Run("Success Login sets cookie", func(t *testing.T) {
		router := setupAuthRouter(&fakeAuthService{
			loginFn: func(_ context.Context, idPJLP, password string) (string, auth.AuthResponse, error) {
				assert.Equal(t, "PJLP-001", idPJLP)
				assert.Equal(t, "password123", password)
				return "access-token", auth.AuthResponse{ID: "user-1", IDPJLP: idPJLP}, nil
			},
		})

		body, _ := json.Marshal(auth.LoginRequest{IDPJLP: "PJLP-001", Password: "password123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "access-token", res["data"].(map[string]interface{})["access_token"])
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		router := setupAuthRouter(&fakeAuthService{
			loginFn: func(context.Context, string, string) (string, auth.AuthResponse, error) {
				return "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			},
		})

		body, _ := json.Marshal(auth.LoginRequest{IDPJLP: "PJLP-001", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ID PJLP atau password salah.")
	})

	t.Run("Missing Fields", func(t *testing.T) {
		router := setupAuthRouter(&fakeAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	router := setupAuthRouter(&fakeAuthService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
