package balanceerrors

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

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
)
