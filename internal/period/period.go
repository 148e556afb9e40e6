// Package period derives the human-readable period label a transaction is
// reported under. Labels are deterministic functions of the transaction date
// and its reporting category, with month names taken from a fixed Indonesian
// table so output is identical on every platform and locale.
package period

import (
	"fmt"
	"time"

	"kaslele/internal/models"
)

// monthNames is the fixed Indonesian month table, indexed by time.Month-1.
var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the Indonesian name for m.
func MonthName(m time.Month) string {
	return monthNames[m-1]
}

// WeekOfMonth returns the 1-based week-of-month for t, with weeks anchored on
// Monday. The offset is the Monday-based weekday index of the 1st of the
// month (Mon=0 .. Sun=6), so the first "week" can hold fewer than seven days:
// in a month starting on Sunday, day 1 falls in week 1 and day 2 already in
// week 2.
func WeekOfMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	offset := (int(first.Weekday()) + 6) % 7
	return (t.Day()-1+offset)/7 + 1
}

// Label renders the period label for a date and reporting category:
//
//	Harian   2024-03-01
//	Mingguan Maret 2024 - Minggu 1
//	Bulanan  Maret 2024
//	Tahunan  2024
//
// An unknown category yields the empty string.
func Label(t time.Time, c models.Category) string {
	switch c {
	case models.CategoryDaily:
		return t.Format("2006-01-02")
	case models.CategoryWeekly:
		return fmt.Sprintf("%s %d - Minggu %d", MonthName(t.Month()), t.Year(), WeekOfMonth(t))
	case models.CategoryMonthly:
		return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
	case models.CategoryYearly:
		return fmt.Sprintf("%d", t.Year())
	}
	return ""
}
