package notificationerrors

import (
	"net/http"

	"siap-cuti/internal/shared/apperror"
)

var (
	ErrNotConfigured = apperror.New(
		apperror.CodeConfiguration,
		"Konfigurasi email server tidak lengkap.",
		http.StatusServiceUnavailable,
	)

	ErrMissingRecipient = apperror.New(
		apperror.CodeValidation,
		"Informasi profil (nama/email) tidak lengkap untuk pengiriman notifikasi.",
		http.StatusBadRequest,
	)
)

// Delivery wraps a transport failure.
func Delivery(err error) *apperror.AppError {
	return apperror.Wrap(err, apperror.CodeDelivery, "Gagal mengirim email", http.StatusBadGateway)
}
