package notification_test

import (
	"context"
	"testing"
	"time"

	"siap-cuti/internal/domain"
	"siap-cuti/internal/notification"
	notificationerrors "siap-cuti/internal/notification/errors"
	notificationMock "siap-cuti/internal/notification/mock"
	"siap-cuti/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var configuredSender = notification.SenderConfig{
	FromAddress: "noreply@siapcuti.id",
	SMTPHost:    "smtp.example.com",
}

func sampleEmail(status string) notification.LeaveStatusEmail {
	return notification.LeaveStatusEmail{
		To:           "budi@example.com",
		Name:         "Budi",
		Status:       status,
		RequestTitle: "Cuti Tahunan",
		StartDate:    time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_SendLeaveStatus_Approved(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := notificationMock.NewMockMailer(ctrl)
	d := notification.NewDispatcher(mailer, configuredSender)
	ctx := context.Background()

	mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg notification.Message) error {
		assert.Equal(t, "SIAP CUTI Admin <noreply@siapcuti.id>", msg.From)
		assert.Equal(t, "budi@example.com", msg.To)
		assert.Equal(t, `Selamat! Pengajuan Cuti Anda Disetujui: "Cuti Tahunan"`, msg.Subject)
		assert.Contains(t, msg.HTML, "Yth. Budi,")
		assert.Contains(t, msg.HTML, "telah disetujui oleh admin")
		assert.Contains(t, msg.HTML, "Senin, 10 Juni 2024 - Rabu, 12 Juni 2024")
		assert.Contains(t, msg.HTML, "#28a745")
		return nil
	})

	assert.True(t, d.Configured())
	assert.NoError(t, d.SendLeaveStatus(ctx, sampleEmail(domain.LeaveStatusApproved)))
}

func TestDispatcher_SendLeaveStatus_RejectedEscapesInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := notificationMock.NewMockMailer(ctrl)
	d := notification.NewDispatcher(mailer, configuredSender)
	ctx := context.Background()

	email := sampleEmail(domain.LeaveStatusRejected)
	email.Name = "<b>Budi</b>"

	mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg notification.Message) error {
		assert.Equal(t, `Informasi Pengajuan Cuti Ditolak: "Cuti Tahunan"`, msg.Subject)
		assert.Contains(t, msg.HTML, "belum dapat disetujui")
		assert.Contains(t, msg.HTML, "&lt;b&gt;Budi&lt;/b&gt;")
		assert.Contains(t, msg.HTML, "#dc3545")
		return nil
	})

	assert.NoError(t, d.SendLeaveStatus(ctx, email))
}

func TestDispatcher_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := notificationMock.NewMockMailer(ctrl)
	d := notification.NewDispatcher(mailer, notification.SenderConfig{SMTPHost: "smtp.example.com"})

	assert.False(t, d.Configured())
	err := d.SendLeaveStatus(context.Background(), sampleEmail(domain.LeaveStatusApproved))

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeConfiguration, appErr.Code)
}

func TestDispatcher_DeliveryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := notificationMock.NewMockMailer(ctrl)
	d := notification.NewDispatcher(mailer, configuredSender)
	ctx := context.Background()

	mailer.EXPECT().Send(ctx, gomock.Any()).Return(assert.AnError)

	err := d.SendLeaveStatus(ctx, sampleEmail(domain.LeaveStatusApproved))

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.CodeDelivery, appErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDispatcher_MissingRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := notification.NewDispatcher(notificationMock.NewMockMailer(ctrl), configuredSender)

	email := sampleEmail(domain.LeaveStatusApproved)
	email.To = ""

	assert.ErrorIs(t, d.SendLeaveStatus(context.Background(), email), notificationerrors.ErrMissingRecipient)
}

func TestFormatIndonesianDate(t *testing.T) {
	assert.Equal(t, "Senin, 10 Juni 2024", notification.FormatIndonesianDate(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Minggu, 1 Desember 2024", notification.FormatIndonesianDate(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)))
}
