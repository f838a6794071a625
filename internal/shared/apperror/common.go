package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		CodeValidation,
		"Data tidak valid. Silakan periksa kembali isian Anda.",
		http.StatusBadRequest,
	)
)

// RequiredField builds a validation error for a missing field.
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusBadRequest)
}

// InvalidField builds a validation error for a malformed field.
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusBadRequest)
}

// Validation wraps per-field messages (json field name -> messages) into ErrValidation.
func Validation(fields map[string][]string) *AppError {
	return ErrValidation.WithDetails(fields)
}
