package notification

import (
	"fmt"
	"time"

	"siap-cuti/internal/domain"
)

// FormatIndonesianDate renders t as "Senin, 10 Juni 2024".
func FormatIndonesianDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d",
		domain.IndonesianWeekday(t.Weekday()),
		t.Day(),
		domain.IndonesianMonth(t.Month()),
		t.Year(),
	)
}
