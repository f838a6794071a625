package balance

import (
	"net/http"
	"strconv"

	balanceerrors "siap-cuti/internal/balance/errors"
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
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetMine(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	year := h.service.CurrentYear()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeServiceError(c, balanceerrors.ErrInvalidYear)
			return
		}
		year = parsed
	}

	b, err := h.service.GetForYear(c.Request.Context(), actor.UserID, year)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, BalanceResponse{
		Year:          b.Year,
		TotalDays:     b.TotalDays,
		UsedDays:      b.UsedDays,
		RemainingDays: b.Remaining(),
	}, nil)
}
