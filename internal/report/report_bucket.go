package report

import (
	"time"

	"siap-cuti/internal/domain"
)

const DefaultMonths = 6

const monthKeyLayout = "2006-01"

// WindowStart is the first instant of the oldest month in a trailing window of months ending at now.
func WindowStart(now time.Time, months int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	return first.AddDate(0, -(months - 1), 0)
}

// BucketMonthly counts rows per status for each calendar month of the window, oldest first.
// Months without rows still get a zero bucket; rows outside the window and unknown statuses are ignored.
func BucketMonthly(rows []StatusRow, now time.Time, months int, loc *time.Location) []MonthlyBucket {
	if months < 1 {
		months = DefaultMonths
	}
	if loc == nil {
		loc = time.UTC
	}

	start := WindowStart(now, months, loc)
	buckets := make([]MonthlyBucket, months)
	index := make(map[string]int, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		key := m.Format(monthKeyLayout)
		buckets[i] = MonthlyBucket{
			Month: key,
			Label: domain.IndonesianMonth(m.Month()),
			Year:  m.Year(),
		}
		index[key] = i
	}

	for _, row := range rows {
		i, ok := index[row.CreatedAt.In(loc).Format(monthKeyLayout)]
		if !ok {
			continue
		}
		switch row.Status {
		case domain.LeaveStatusPending:
			buckets[i].Pending++
		case domain.LeaveStatusApproved:
			buckets[i].Approved++
		case domain.LeaveStatusRejected:
			buckets[i].Rejected++
		}
	}
	return buckets
}
