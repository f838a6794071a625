package domain

import "time"

var indonesianWeekdays = [...]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

func IndonesianWeekday(d time.Weekday) string {
	return indonesianWeekdays[d]
}

func IndonesianMonth(m time.Month) string {
	return indonesianMonths[m-1]
}
