package reporterrors

import (
	"net/http"

	"siap-cuti/internal/shared/apperror"
)

var (
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Tahun tidak valid",
		http.StatusBadRequest,
	)
	ErrInvalidMonths = apperror.New(
		apperror.CodeInvalidInput,
		"Jumlah bulan harus antara 1 dan 24",
		http.StatusBadRequest,
	)
)
