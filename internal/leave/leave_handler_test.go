package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"siap-cuti/internal/domain"
	"siap-cuti/internal/leave"
	leaveerrors "siap-cuti/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	leave.Service

	submitFn       func(ctx context.Context, actor domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	updateStatusFn func(ctx context.Context, actor domain.Actor, id, target string) (leave.StatusUpdateResult, error)
	historyFn      func(ctx context.Context, actor domain.Actor, year int) (leave.HistoryResponse, error)
	markReadFn     func(ctx context.Context, actor domain.Actor, id string) error
	listFn         func(ctx context.Context, actor domain.Actor, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, actor domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, actor, req)
}

func (f *fakeLeaveService) UpdateStatus(ctx context.Context, actor domain.Actor, id, target string) (leave.StatusUpdateResult, error) {
	return f.updateStatusFn(ctx, actor, id, target)
}

func (f *fakeLeaveService) Approve(ctx context.Context, actor domain.Actor, id string) (leave.StatusUpdateResult, error) {
	return f.updateStatusFn(ctx, actor, id, domain.LeaveStatusApproved)
}

func (f *fakeLeaveService) History(ctx context.Context, actor domain.Actor, year int) (leave.HistoryResponse, error) {
	return f.historyFn(ctx, actor, year)
}

func (f *fakeLeaveService) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	return f.markReadFn(ctx, actor, id)
}

func (f *fakeLeaveService) List(ctx context.Context, actor domain.Actor, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error) {
	return f.listFn(ctx, actor, filter)
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newTestContext(method, target, body string, actor *domain.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if actor != nil {
		c.Set("user_id", actor.UserID)
		c.Set("role", actor.Role)
	}
	return c, w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Submit(t *testing.T) {
	actor := &domain.Actor{UserID: "u-1", Role: domain.RoleMember}
	body := `{"title":"Cuti keluarga","reason":"Menghadiri pernikahan saudara","start_date":"2025-03-10","end_date":"2025-03-12"}`

	t.Run("created", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			submitFn: func(_ context.Context, a domain.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, "u-1", a.UserID)
				assert.Equal(t, "2025-03-12", req.EndDate)
				return leave.LeaveResponse{ID: "l-1", Duration: 3, Status: domain.LeaveStatusPending}, nil
			},
		})
		c, w := newTestContext(http.MethodPost, "/leaves", body, actor)

		h.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w)
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), "Pengajuan cuti berhasil dikirim.")
	})

	t.Run("insufficient balance carries details", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			submitFn: func(context.Context, domain.Actor, leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.InsufficientBalance(2, 3)
			},
		})
		c, w := newTestContext(http.MethodPost, "/leaves", body, actor)

		h.Submit(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		env := decodeEnvelope(t, w)
		assert.Equal(t, "INSUFFICIENT_BALANCE", env.Error.Code)
		assert.Equal(t, float64(2), env.Error.Details["remaining_days"])
		assert.Equal(t, float64(3), env.Error.Details["requested_days"])
	})

	t.Run("malformed json", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		c, w := newTestContext(http.MethodPost, "/leaves", `{`, actor)

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		c, w := newTestContext(http.MethodPost, "/leaves", body, nil)

		h.Submit(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_UpdateStatus(t *testing.T) {
	actor := &domain.Actor{UserID: "a-1", Role: domain.RoleAdmin}

	t.Run("passes target through", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			updateStatusFn: func(_ context.Context, _ domain.Actor, id, target string) (leave.StatusUpdateResult, error) {
				assert.Equal(t, "l-1", id)
				assert.Equal(t, domain.LeaveStatusRejected, target)
				return leave.StatusUpdateResult{
					Leave:        leave.LeaveResponse{ID: id, Status: target},
					Notification: leave.NotificationOutcome{Status: leave.NotificationSkipped},
				}, nil
			},
		})
		c, w := newTestContext(http.MethodPatch, "/leaves/l-1/status", `{"status":"Ditolak"}`, actor)
		c.Params = gin.Params{{Key: "id", Value: "l-1"}}

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(decodeEnvelope(t, w).Data), `"skipped"`)
	})

	t.Run("already decided", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			updateStatusFn: func(context.Context, domain.Actor, string, string) (leave.StatusUpdateResult, error) {
				return leave.StatusUpdateResult{}, leaveerrors.ErrAlreadyDecided
			},
		})
		c, w := newTestContext(http.MethodPost, "/leaves/l-1/approve", "", actor)
		c.Params = gin.Params{{Key: "id", Value: "l-1"}}

		h.Approve(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "INVALID_STATE", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("missing status", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{})
		c, w := newTestContext(http.MethodPatch, "/leaves/l-1/status", `{}`, actor)

		h.UpdateStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_History_InvalidYear(t *testing.T) {
	h := leave.NewHandler(&fakeLeaveService{})
	c, w := newTestContext(http.MethodGet, "/leaves/history?year=abc", "", &domain.Actor{UserID: "u-1", Role: domain.RoleMember})

	h.History(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MarkRead_NotFound(t *testing.T) {
	h := leave.NewHandler(&fakeLeaveService{
		markReadFn: func(context.Context, domain.Actor, string) error {
			return leaveerrors.ErrLeaveNotFound
		},
	})
	c, w := newTestContext(http.MethodPost, "/leaves/x/read", "", &domain.Actor{UserID: "u-1", Role: domain.RoleMember})
	c.Params = gin.Params{{Key: "id", Value: "x"}}

	h.MarkRead(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_List_DefaultsToPending(t *testing.T) {
	h := leave.NewHandler(&fakeLeaveService{
		listFn: func(_ context.Context, _ domain.Actor, filter leave.ListFilter) ([]leave.LeaveResponse, int64, error) {
			assert.Equal(t, domain.LeaveStatusPending, filter.Status)
			assert.Equal(t, 2, filter.Page)
			return []leave.LeaveResponse{{ID: "l-1"}}, 11, nil
		},
	})
	c, w := newTestContext(http.MethodGet, "/leaves?page=2", "", &domain.Actor{UserID: "a-1", Role: domain.RoleAdmin})

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, float64(11), env.Meta["total"])
	assert.Equal(t, float64(2), env.Meta["totalPages"])
}
