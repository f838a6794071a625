package profile

import (
	"net/http"

	"siap-cuti/internal/middleware"
	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("profile.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.handler")
	}
	return &Handler{svc: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMe(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	res, err := h.svc.GetMe(c.Request.Context(), actor.UserID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	res, err := h.svc.Update(c.Request.Context(), actor.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"profile": res,
		"message": "Profil berhasil diperbarui.",
	}, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.ErrInvalidInput)
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), actor.UserID, req); err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password berhasil diubah."}, nil)
}
