package leave

import (
	"strings"
	"time"

	"siap-cuti/internal/domain"
	leaveerrors "siap-cuti/internal/leave/errors"
	"siap-cuti/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

const (
	statusFilterAll = "Semua"
	msgDatesMissing = "Tanggal mulai dan selesai harus diisi."
	msgDateFormat   = "Format tanggal harus YYYY-MM-DD."
)

var submitMessages = map[string]string{
	"start_date.required": msgDatesMissing,
	"end_date.required":   msgDatesMissing,
	"start_date.datetime": msgDateFormat,
	"end_date.datetime":   msgDateFormat,
	"title.required":      "Judul pengajuan minimal 3 karakter.",
	"title.min":           "Judul pengajuan minimal 3 karakter.",
	"title.max":           "Judul pengajuan maksimal 255 karakter.",
	"reason.required":     "Alasan harus diisi minimal 10 karakter.",
	"reason.min":          "Alasan harus diisi minimal 10 karakter.",
}

type submission struct {
	Title     string
	Reason    string
	StartDate time.Time
	EndDate   time.Time
	Duration  int
}

// validateSubmission trims the request, checks field rules then the date range,
// and computes the inclusive day count.
func validateSubmission(v *validator.Validate, req CreateLeaveRequest) (submission, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Reason = strings.TrimSpace(req.Reason)
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)

	if err := v.Struct(req); err != nil {
		return submission{}, apperror.MapValidationErrors(err, submitMessages)
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)
	if end.Before(start) {
		return submission{}, leaveerrors.ErrInvalidDateRange
	}

	return submission{
		Title:     req.Title,
		Reason:    req.Reason,
		StartDate: start,
		EndDate:   end,
		Duration:  inclusiveDays(start, end),
	}, nil
}

// inclusiveDays counts calendar days from start to end, both included.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func validateTargetStatus(target string) error {
	if target != domain.LeaveStatusApproved && target != domain.LeaveStatusRejected {
		return leaveerrors.ErrInvalidTargetStatus
	}
	return nil
}

// normalizeStatusFilter maps "" and "Semua" to no filter.
func normalizeStatusFilter(status string) (string, error) {
	switch strings.TrimSpace(status) {
	case "", statusFilterAll:
		return "", nil
	case domain.LeaveStatusPending, domain.LeaveStatusApproved, domain.LeaveStatusRejected:
		return strings.TrimSpace(status), nil
	default:
		return "", leaveerrors.ErrInvalidStatusFilter
	}
}
