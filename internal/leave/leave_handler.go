package leave

import (
	"net/http"
	"strconv"

	"siap-cuti/internal/domain"
	leaveerrors "siap-cuti/internal/leave/errors"
	"siap-cuti/internal/middleware"
	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) actor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
	}
	return actor, ok
}

func (h *Handler) Submit(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit leave bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.ErrValidation)
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"leave":   resp,
		"message": msgSubmitted,
	}, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, leaveerrors.ErrInvalidTargetStatus)
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	res, err := h.service.Approve(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	res, err := h.service.Reject(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, leaveerrors.ErrInvalidYear)
			return
		}
		year = y
	}

	resp, err := h.service.History(c.Request.Context(), actor, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, UnreadCountResponse{Count: count}, nil)
}

func (h *Handler) MarkRead(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.MarkRead(c.Request.Context(), actor, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"id": id, "is_read_by_user": true}, nil)
}

// List serves the admin queue. Status defaults to Menunggu; "Semua" lists everything.
func (h *Handler) List(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	page, pageSize := response.ParsePagination(c, response.DefaultPageSize)
	filter := ListFilter{
		Status:   c.DefaultQuery("status", domain.LeaveStatusPending),
		Page:     page,
		PageSize: pageSize,
	}

	resp, total, err := h.service.List(c.Request.Context(), actor, filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}
