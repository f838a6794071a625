package notification

import (
	"context"
	"strings"
	"time"

	notificationerrors "siap-cuti/internal/notification/errors"
	"siap-cuti/internal/shared/contextutil"

	"go.uber.org/zap"
)

type LeaveStatusEmail struct {
	To           string
	Name         string
	Status       string
	RequestTitle string
	StartDate    time.Time
	EndDate      time.Time
}

//go:generate mockgen -source=notification_dispatcher.go -destination=mock/notification_dispatcher_mock.go -package=mock
type Dispatcher interface {
	Configured() bool
	SendLeaveStatus(ctx context.Context, email LeaveStatusEmail) error
}

type SenderConfig struct {
	FromAddress string
	FromName    string
	SMTPHost    string
}

type dispatcher struct {
	mailer Mailer
	cfg    SenderConfig
	logger *zap.Logger
}

func NewDispatcher(mailer Mailer, cfg SenderConfig, logger ...*zap.Logger) Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	if cfg.FromName == "" {
		cfg.FromName = "SIAP CUTI Admin"
	}
	return &dispatcher{mailer: mailer, cfg: cfg, logger: l}
}

func (d *dispatcher) Configured() bool {
	return d.mailer != nil && d.cfg.FromAddress != "" && d.cfg.SMTPHost != ""
}

func (d *dispatcher) SendLeaveStatus(ctx context.Context, email LeaveStatusEmail) error {
	l := contextutil.GetLogger(ctx, d.logger)

	if !d.Configured() {
		l.Error("email transport is not configured")
		return notificationerrors.ErrNotConfigured
	}
	if strings.TrimSpace(email.To) == "" || strings.TrimSpace(email.Name) == "" {
		return notificationerrors.ErrMissingRecipient
	}

	html, err := renderLeaveStatus(email)
	if err != nil {
		return err
	}

	msg := Message{
		From:    d.cfg.FromName + " <" + d.cfg.FromAddress + ">",
		To:      email.To,
		Subject: leaveStatusSubject(email.Status, email.RequestTitle),
		HTML:    html,
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		l.Error("failed to send leave status email", zap.String("to", email.To), zap.Error(err))
		return notificationerrors.Delivery(err)
	}

	l.Info("leave status email sent", zap.String("to", email.To), zap.String("status", email.Status))
	return nil
}
