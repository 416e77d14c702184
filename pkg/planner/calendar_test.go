package planner_test

import (
	"testing"
	"time"

	"prep-scheduler/pkg/planner"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDate(t *testing.T) {
	tests := []struct {
		day  string
		want planner.CalendarType
	}{
		{"2026-10-12", planner.CalendarWeekday}, // Monday
		{"2026-10-13", planner.CalendarWeekday},
		{"2026-10-14", planner.CalendarRestday},
		{"2026-10-15", planner.CalendarWeekday},
		{"2026-10-16", planner.CalendarWeekday},
		{"2026-10-17", planner.CalendarHoliday},
		{"2026-10-18", planner.CalendarHoliday},
	}
	for _, tt := range tests {
		d, err := time.Parse(time.DateOnly, tt.day)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, planner.ClassifyDate(d), tt.day)
	}
}

func TestClassifyDateEveryDayOfThreeYears(t *testing.T) {
	start := time.Date(2025, 1, 1, 15, 30, 0, 0, time.UTC)
	for i := 0; i < 3*366; i++ {
		d := start.AddDate(0, 0, i)
		got := planner.ClassifyDate(d)
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
			assert.Equal(t, planner.CalendarHoliday, got)
		case time.Wednesday:
			assert.Equal(t, planner.CalendarRestday, got)
		default:
			assert.Equal(t, planner.CalendarWeekday, got)
		}
		assert.Equal(t, got, planner.ClassifyDate(d))
	}
}

func TestWeekdayName(t *testing.T) {
	d := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Thursday", planner.WeekdayName(d))
	assert.True(t, planner.IsWeekdayName("Thursday"))
	assert.False(t, planner.IsWeekdayName("thursday"))
	assert.False(t, planner.IsWeekdayName(""))
}
