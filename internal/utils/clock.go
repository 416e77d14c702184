package utils

import (
	"time"
	_ "time/tzdata"
)

type Clock interface {
	Now() time.Time
}

type zoneClock struct {
	loc *time.Location
}

// NewClock reports wall time in APP_TIMEZONE, falling back to UTC when the zone is unknown.
func NewClock() Clock {
	loc, err := time.LoadLocation(GetConfig("APP_TIMEZONE"))
	if err != nil {
		LogError("utils", "NewClock", "load timezone", GetConfig("APP_TIMEZONE"), err)
		loc = time.UTC
	}
	return zoneClock{loc: loc}
}

func (c zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
