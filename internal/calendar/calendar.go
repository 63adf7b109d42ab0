package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// WeeksPerMonth is the fixed number of weeks in every month.
	WeeksPerMonth = 4
	// DaysPerWeek is the length of weeks 1 to 3.
	DaysPerWeek = 7
	// lastWeekStart is the first day of week 4.
	lastWeekStart = 22
	minMonthDays  = 28
)

// DaysInWeek returns the number of days in week of a month with daysInMonth
// days. Weeks outside 1..4 have no days.
func DaysInWeek(week, daysInMonth int) int {
	switch {
	case week >= 1 && week < WeeksPerMonth:
		return DaysPerWeek
	case week == WeeksPerMonth:
		return DaysPerWeek + (daysInMonth - minMonthDays)
	default:
		return 0
	}
}

// DayOfWeek maps a day of month to its 1-based position within its week.
// Day 22 is position 1 of week 4, day 31 is position 10. Days below 1 map to 0.
func DayOfWeek(dayOfMonth int) int {
	switch {
	case dayOfMonth < 1:
		return 0
	case dayOfMonth < lastWeekStart:
		return (dayOfMonth-1)%DaysPerWeek + 1
	default:
		return dayOfMonth - (lastWeekStart - 1)
	}
}

// WeekOfMonth returns the week (1..4) containing dayOfMonth, or 0 for days
// below 1.
func WeekOfMonth(dayOfMonth int) int {
	switch {
	case dayOfMonth < 1:
		return 0
	case dayOfMonth < lastWeekStart:
		return (dayOfMonth-1)/DaysPerWeek + 1
	default:
		return WeeksPerMonth
	}
}

// FirstDayOfWeek returns the day of month on which week starts, or 0 for
// weeks outside 1..4.
func FirstDayOfWeek(week int) int {
	if week < 1 || week > WeeksPerMonth {
		return 0
	}
	return (week-1)*DaysPerWeek + 1
}

// WeekRange renders the day span of week, e.g. "22 - 30" for week 4 of a
// 30-day month. Weeks outside 1..4 render as "".
func WeekRange(week, daysInMonth int) string {
	n := DaysInWeek(week, daysInMonth)
	if n == 0 {
		return ""
	}
	first := FirstDayOfWeek(week)
	return fmt.Sprintf("%d - %d", first, first+n-1)
}

var monthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of a 1-indexed month, or "" when month
// is outside 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month]
}

// DaysInMonth returns the Gregorian length of month in year.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// PreviousMonth returns the year and month before (year, month).
func PreviousMonth(year, month int) (int, int) {
	if month <= 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Date is a "YYYY-MM-DD" string split into its parts.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate splits s on "-" without calendar validation. It reports false
// when s does not have three numeric parts.
func ParseDate(s string) (Date, bool) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, false
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, false
		}
		nums[i] = n
	}
	return Date{Year: nums[0], Month: nums[1], Day: nums[2]}, true
}

// DayOfMonth returns the day part of a "YYYY-MM-DD" string, or 0 when it
// cannot be parsed.
func DayOfMonth(s string) int {
	d, ok := ParseDate(s)
	if !ok {
		return 0
	}
	return d.Day
}

// Format renders year, month and day as "YYYY-MM-DD".
func Format(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
