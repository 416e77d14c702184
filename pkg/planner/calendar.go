package planner

import "time"

type CalendarType string

const (
	CalendarWeekday CalendarType = "weekday"
	CalendarHoliday CalendarType = "holiday"
	CalendarRestday CalendarType = "restday"
)

// RestdayWeekday is the fixed midweek closing day.
const RestdayWeekday = time.Wednesday

// ClassifyDate maps a calendar date to its calendar type. Saturdays and
// Sundays are holidays, the midweek closing day is a restday.
func ClassifyDate(d time.Time) CalendarType {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return CalendarHoliday
	case RestdayWeekday:
		return CalendarRestday
	default:
		return CalendarWeekday
	}
}

// WeekdayName is the weekday slot label stored on schedule tasks.
func WeekdayName(d time.Time) string {
	return d.Weekday().String()
}

var weekdayNames = map[string]bool{
	"Monday":    true,
	"Tuesday":   true,
	"Wednesday": true,
	"Thursday":  true,
	"Friday":    true,
	"Saturday":  true,
	"Sunday":    true,
}

func IsWeekdayName(name string) bool {
	return weekdayNames[name]
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
