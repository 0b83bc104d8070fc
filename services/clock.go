package services

import (
	"time"

	"rent-reminder-backend/models"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock reads the wall clock in loc. A nil loc means time.Local.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Today is the calendar date of clock.Now() in the clock's own location.
func Today(clock Clock) models.Date {
	return models.DateOf(clock.Now())
}
