package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"siap-cuti/internal/balance"
	"siap-cuti/internal/domain"
	"siap-cuti/internal/events"
	leaveerrors "siap-cuti/internal/leave/errors"
	"siap-cuti/internal/messaging/kafka"
	"siap-cuti/internal/notification"
	notificationerrors "siap-cuti/internal/notification/errors"
	"siap-cuti/internal/shared/apperror"
	"siap-cuti/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	msgSubmitted = "Pengajuan cuti berhasil dikirim."

	msgNotifySkipped = "Status pengajuan berhasil diperbarui, namun notifikasi email tidak terkirim karena konfigurasi server email belum lengkap. Silakan hubungi teknisi."
	msgNotifyFailed  = "Pengajuan berhasil diubah, namun notifikasi email gagal dikirim. Periksa log server untuk detail."
	msgNotifySentFmt = "Pengajuan berhasil diubah menjadi %q dan notifikasi email telah dikirim."
	msgUnchangedFmt  = "Pengajuan sudah berstatus %q."
	msgNoNotify      = "Status tidak berubah, notifikasi tidak dikirim."
)

var errBalanceUnavailable = apperror.New(
	apperror.CodeServiceUnavailable,
	"Gagal memverifikasi jatah cuti. Silakan coba lagi.",
	http.StatusServiceUnavailable,
)

// Authorizer decides whether an actor may perform an action on a resource.
type Authorizer interface {
	Authorize(actor domain.Actor, resource, action string) error
}

// DashboardCache drops cached admin rollups once a request changes.
type DashboardCache interface {
	InvalidateDashboard(ctx context.Context)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id, target string) (StatusUpdateResult, error)
	Approve(ctx context.Context, actor domain.Actor, id string) (StatusUpdateResult, error)
	Reject(ctx context.Context, actor domain.Actor, id string) (StatusUpdateResult, error)
	GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error)
	History(ctx context.Context, actor domain.Actor, year int) (HistoryResponse, error)
	UnreadCount(ctx context.Context, actor domain.Actor) (int64, error)
	MarkRead(ctx context.Context, actor domain.Actor, id string) error
	List(ctx context.Context, actor domain.Actor, filter ListFilter) ([]LeaveResponse, int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	outbox    kafka.OutboxRepository
	balances  balance.Service
	notifier  notification.Dispatcher
	dashboard DashboardCache
	authz     Authorizer
	validate  *validator.Validate
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	balances balance.Service,
	notifier notification.Dispatcher,
	dashboard DashboardCache,
	authz Authorizer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		outbox:    outbox,
		balances:  balances,
		notifier:  notifier,
		dashboard: dashboard,
		authz:     authz,
		validate:  apperror.NewValidator(),
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, actor domain.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionCreate); err != nil {
		return LeaveResponse{}, err
	}
	userID, err := uuid.Parse(actor.UserID)
	if err != nil {
		return LeaveResponse{}, apperror.ErrUnauthorized
	}

	sub, err := validateSubmission(s.validate, req)
	if err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	year := s.balances.CurrentYear()
	bal, err := s.balances.GetForYear(ctx, actor.UserID, year)
	if err != nil {
		log.Error("submit leave balance lookup failed",
			zap.String("user_id", actor.UserID),
			zap.Int("year", year),
			zap.Error(err),
		)
		return LeaveResponse{}, apperror.Wrap(err, errBalanceUnavailable.Code, errBalanceUnavailable.Message, errBalanceUnavailable.HTTPStatus)
	}
	if sub.Duration > bal.Remaining() {
		log.Info("submit leave rejected, insufficient balance",
			zap.String("user_id", actor.UserID),
			zap.Int("remaining_days", bal.Remaining()),
			zap.Int("requested_days", sub.Duration),
		)
		return LeaveResponse{}, leaveerrors.InsufficientBalance(bal.Remaining(), sub.Duration)
	}

	now := s.now()
	l := &Leave{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        sub.Title,
		Reason:       sub.Reason,
		StartDate:    sub.StartDate,
		EndDate:      sub.EndDate,
		Duration:     sub.Duration,
		Status:       domain.LeaveStatusPending,
		IsReadByUser: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("leave submitted",
		zap.String("leave_id", l.ID.String()),
		zap.String("user_id", actor.UserID),
		zap.Int("duration", l.Duration),
	)
	s.invalidateDashboard(ctx)
	return mapToResponse(*l), nil
}

func (s *service) Approve(ctx context.Context, actor domain.Actor, id string) (StatusUpdateResult, error) {
	return s.UpdateStatus(ctx, actor, id, domain.LeaveStatusApproved)
}

func (s *service) Reject(ctx context.Context, actor domain.Actor, id string) (StatusUpdateResult, error) {
	return s.UpdateStatus(ctx, actor, id, domain.LeaveStatusRejected)
}

// UpdateStatus moves a pending request to a terminal status, records the change in the
// outbox within the same transaction, then notifies the owner. Notification failures never
// undo the transition; they are reported in the result.
func (s *service) UpdateStatus(ctx context.Context, actor domain.Actor, id, target string) (StatusUpdateResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionApprove); err != nil {
		return StatusUpdateResult{}, err
	}
	if err := validateTargetStatus(target); err != nil {
		return StatusUpdateResult{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return StatusUpdateResult{}, leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update leave status begin tx failed", zap.Error(err))
		return StatusUpdateResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.LockByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatusUpdateResult{}, leaveerrors.ErrLeaveNotFound
		}
		log.Error("update leave status load failed", zap.String("leave_id", id), zap.Error(err))
		return StatusUpdateResult{}, err
	}

	if l.Status == target {
		return StatusUpdateResult{
			Leave:        mapToResponse(*l),
			Notification: NotificationOutcome{Status: NotificationSkipped, Message: msgNoNotify},
			Message:      fmt.Sprintf(msgUnchangedFmt, target),
		}, nil
	}
	if domain.IsTerminalLeaveStatus(l.Status) {
		log.Warn("update leave status rejected, already decided",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
			zap.String("target", target),
		)
		return StatusUpdateResult{}, leaveerrors.ErrAlreadyDecided
	}

	previous := l.Status
	now := s.now()
	if err := qtx.UpdateStatus(ctx, id, target, now); err != nil {
		log.Error("update leave status persist failed", zap.String("leave_id", id), zap.Error(err))
		return StatusUpdateResult{}, err
	}
	l.Status = target
	l.UpdatedAt = now
	l.IsReadByUser = false

	if s.outbox != nil {
		evt, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			events.LeaveAggregateType,
			l.ID.String(),
			events.LeaveStatusChangedType,
			events.LeaveStatusChangedTopic,
			statusChangedEvent(*l, previous, actor.UserID, now),
		)
		if err != nil {
			log.Error("update leave status build outbox event failed", zap.Error(err))
			return StatusUpdateResult{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			log.Error("update leave status outbox insert failed", zap.Error(err))
			return StatusUpdateResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("update leave status commit failed", zap.Error(err))
		return StatusUpdateResult{}, err
	}

	log.Info("leave status updated",
		zap.String("leave_id", id),
		zap.String("previous_status", previous),
		zap.String("status", target),
		zap.String("changed_by", actor.UserID),
	)
	s.invalidateDashboard(ctx)

	outcome := s.notify(ctx, *l)
	return StatusUpdateResult{
		Leave:        mapToResponse(*l),
		Notification: outcome,
		Message:      outcome.Message,
	}, nil
}

func (s *service) notify(ctx context.Context, l Leave) NotificationOutcome {
	log := contextutil.GetLogger(ctx, s.logger).With(zap.String("leave_id", l.ID.String()))

	if s.notifier == nil || !s.notifier.Configured() {
		log.Warn("leave status email skipped, mail sender not configured")
		return NotificationOutcome{Status: NotificationSkipped, Message: msgNotifySkipped}
	}
	if l.Requester == nil || l.Requester.Email == "" || l.Requester.Name == "" {
		log.Error("leave status email failed",
			zap.String("user_id", l.UserID.String()),
			zap.Error(notificationerrors.ErrMissingRecipient),
		)
		return NotificationOutcome{Status: NotificationFailed, Message: msgNotifyFailed}
	}

	err := s.notifier.SendLeaveStatus(ctx, notification.LeaveStatusEmail{
		To:           l.Requester.Email,
		Name:         l.Requester.Name,
		Status:       l.Status,
		RequestTitle: l.Title,
		StartDate:    l.StartDate,
		EndDate:      l.EndDate,
	})
	if err != nil {
		if errors.Is(err, notificationerrors.ErrNotConfigured) {
			return NotificationOutcome{Status: NotificationSkipped, Message: msgNotifySkipped}
		}
		log.Error("leave status email failed", zap.Error(err))
		return NotificationOutcome{Status: NotificationFailed, Message: msgNotifyFailed}
	}

	return NotificationOutcome{Status: NotificationSent, Message: fmt.Sprintf(msgNotifySentFmt, l.Status)}
}

func (s *service) invalidateDashboard(ctx context.Context) {
	if s.dashboard != nil {
		s.dashboard.InvalidateDashboard(ctx)
	}
}

func statusChangedEvent(l Leave, previous, changedBy string, at time.Time) events.LeaveStatusChangedEvent {
	return events.LeaveStatusChangedEvent{
		EventType:      events.LeaveStatusChangedType,
		LeaveID:        l.ID.String(),
		UserID:         l.UserID.String(),
		PreviousStatus: previous,
		Status:         l.Status,
		StartDate:      l.StartDate.Format(dateLayout),
		EndDate:        l.EndDate.Format(dateLayout),
		Duration:       l.Duration,
		Year:           l.StartDate.Year(),
		ChangedBy:      changedBy,
		OccurredAt:     at.UTC(),
	}
}

// GetByID returns the request to its owner, or to anyone allowed to read all requests.
// Other callers get NOT_FOUND so ids do not leak.
func (s *service) GetByID(ctx context.Context, actor domain.Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.UserID.String() == actor.UserID {
		if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionReadOwn); err != nil {
			return LeaveResponse{}, err
		}
		return mapToResponse(*l), nil
	}
	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionReadAll); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

// History lists the actor's requests starting in year, newest first. Year 0 means the current year.
func (s *service) History(ctx context.Context, actor domain.Actor, year int) (HistoryResponse, error) {
	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionReadOwn); err != nil {
		return HistoryResponse{}, err
	}

	current := s.balances.CurrentYear()
	if year == 0 {
		year = current
	}
	if year < 1 {
		return HistoryResponse{}, leaveerrors.ErrInvalidYear
	}

	leaves, err := s.repo.FindHistory(ctx, actor.UserID, year)
	if err != nil {
		return HistoryResponse{}, err
	}
	years, err := s.repo.ListYears(ctx, actor.UserID)
	if err != nil {
		return HistoryResponse{}, err
	}

	return HistoryResponse{
		Year:           year,
		Leaves:         mapToListResponse(leaves),
		AvailableYears: mergeYears(years, current),
	}, nil
}

func (s *service) UnreadCount(ctx context.Context, actor domain.Actor) (int64, error) {
	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionReadOwn); err != nil {
		return 0, err
	}
	return s.repo.CountUnread(ctx, actor.UserID)
}

func (s *service) MarkRead(ctx context.Context, actor domain.Actor, id string) error {
	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionReadOwn); err != nil {
		return err
	}
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrLeaveNotFound
	}

	ok, err := s.repo.MarkRead(ctx, actor.UserID, id)
	if err != nil {
		return err
	}
	if !ok {
		return leaveerrors.ErrLeaveNotFound
	}
	return nil
}

func (s *service) List(ctx context.Context, actor domain.Actor, filter ListFilter) ([]LeaveResponse, int64, error) {
	if err := s.authz.Authorize(actor, domain.ResourceLeave, domain.ActionReadAll); err != nil {
		return nil, 0, err
	}

	status, err := normalizeStatusFilter(filter.Status)
	if err != nil {
		return nil, 0, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 10
	}

	leaves, total, err := s.repo.FindAll(ctx, status, (filter.Page-1)*filter.PageSize, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(leaves), total, nil
}

// mergeYears returns the distinct years plus current, newest first.
func mergeYears(years []int, current int) []int {
	seen := map[int]bool{current: true}
	out := []int{current}
	for _, y := range years {
		if !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		Title:        l.Title,
		Reason:       l.Reason,
		StartDate:    l.StartDate.Format(dateLayout),
		EndDate:      l.EndDate.Format(dateLayout),
		Duration:     l.Duration,
		Status:       l.Status,
		IsReadByUser: l.IsReadByUser,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
	}
	if l.Requester != nil {
		resp.RequesterName = l.Requester.Name
		resp.RequesterIDPJLP = l.Requester.IDPJLP
		resp.RequesterAvatarURL = l.Requester.AvatarURL
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, mapToResponse(l))
	}
	return out
}
