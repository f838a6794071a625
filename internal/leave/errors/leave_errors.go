package leaveerrors

import (
	"fmt"
	"net/http"

	"siap-cuti/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Pengajuan cuti tidak ditemukan.",
		http.StatusNotFound,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidDateRange,
		"Tanggal selesai tidak boleh sebelum tanggal mulai.",
		http.StatusBadRequest,
	)
	ErrInvalidTargetStatus = apperror.New(
		apperror.CodeValidation,
		"Status tujuan harus Disetujui atau Ditolak.",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeValidation,
		"Filter status tidak dikenal.",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Pengajuan ini sudah diproses dan statusnya tidak dapat diubah lagi.",
		http.StatusConflict,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Tahun tidak valid",
		http.StatusBadRequest,
	)
)

// InsufficientBalanceError carries the numbers behind a rejected submission.
type InsufficientBalanceError struct {
	Remaining int
	Requested int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("requested %d days, %d remaining", e.Requested, e.Remaining)
}

// InsufficientBalance wraps InsufficientBalanceError so callers can reach it with errors.As.
func InsufficientBalance(remaining, requested int) *apperror.AppError {
	cause := &InsufficientBalanceError{Remaining: remaining, Requested: requested}
	appErr := apperror.Wrap(
		cause,
		apperror.CodeInsufficientBalance,
		fmt.Sprintf("Jatah cuti tidak mencukupi. Sisa cuti Anda: %d hari.", remaining),
		http.StatusUnprocessableEntity,
	)
	appErr.Details = map[string]int{
		"remaining_days": remaining,
		"requested_days": requested,
	}
	return appErr
}
