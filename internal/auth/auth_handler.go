package auth

import (
	"net/http"
	"time"

	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service      Service
	secureCookie bool
	cookieMaxAge time.Duration
}

func NewHandler(s Service, secureCookie bool, cookieMaxAge time.Duration) *Handler {
	return &Handler{service: s, secureCookie: secureCookie, cookieMaxAge: cookieMaxAge}
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, "ID PJLP dan password wajib diisi.", nil)
		return
	}

	token, userResp, err := ctrl.service.Login(c.Request.Context(), req.IDPJLP, req.Password)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(ctrl.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, gin.H{
		"user":         userResp,
		"access_token": token,
	}, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, "Logout success.", nil)
}
