package report

import (
	"net/http"
	"strconv"
	"time"

	reporterrors "siap-cuti/internal/report/errors"
	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	now     func() time.Time
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, now: time.Now, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Dashboard(c *gin.Context) {
	resp, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Monthly(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(DefaultMonths)))
	if err != nil {
		h.writeServiceError(c, reporterrors.ErrInvalidMonths)
		return
	}

	resp, err := h.service.MonthlyStats(c.Request.Context(), h.now(), months)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Annual(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			h.writeServiceError(c, reporterrors.ErrInvalidYear)
			return
		}
		year = y
	}
	page, pageSize := response.ParsePagination(c, defaultPageSize)

	resp, total, err := h.service.AnnualReport(c.Request.Context(), AnnualFilter{
		Year:     year,
		Query:    c.Query("query"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}
