package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// 1. Ganti underscore dengan spasi (start_date -> start date)
	s = strings.ReplaceAll(s, "_", " ")

	// 2. Ubah jadi Title Case (start date -> Start Date)
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError returns an AppError for the first failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]

		// e.Field() sudah berupa nama json karena RegisterTagNameFunc di Init()
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}

// MapValidationErrors collects every failing field into ErrValidation details,
// keyed by json field name. Custom messages override the generic ones per "field.tag".
func MapValidationErrors(err error, messages map[string]string) *AppError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ErrValidation
	}

	fields := make(map[string][]string, len(errs))
	for _, e := range errs {
		field := e.Field()
		msg, ok := messages[field+"."+e.Tag()]
		if !ok {
			msg = defaultMessage(e)
		}
		fields[field] = append(fields[field], msg)
	}
	return Validation(fields)
}

func defaultMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, e.Param())
	case "datetime":
		return name + " must use format YYYY-MM-DD"
	default:
		return name + " is invalid"
	}
}
