package profileerrors

import (
	"net/http"

	"siap-cuti/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Profil tidak ditemukan",
		http.StatusNotFound,
	)

	ErrIDPJLPTaken = apperror.New(
		apperror.CodeConflict,
		"ID PJLP sudah digunakan oleh pengguna lain.",
		http.StatusConflict,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeValidation,
		"Konfirmasi password tidak cocok.",
		http.StatusBadRequest,
	)
)
