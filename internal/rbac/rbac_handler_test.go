package rbac_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"siap-cuti/internal/domain"
	"siap-cuti/internal/rbac"
	"siap-cuti/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := rbac.NewHandler(newService(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/rbac/check", strings.NewReader(`{"resource":"leave","action":"approve"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("role", domain.RoleAdmin)

	h.Check(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Ok   bool                   `json:"ok"`
		Data domain.EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Ok)
	assert.True(t, env.Data.Allowed)
}

func TestHandler_Check_ValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	h := rbac.NewHandler(newService(t))

	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{"missing resource", `{"action":"approve"}`, apperror.CodeValidation, "Resource is required"},
		{"malformed json", `{"resource":`, apperror.CodeInvalidInput, "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/rbac/check", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			h.Check(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var env struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantMsg, env.Error.Message)
		})
	}
}
