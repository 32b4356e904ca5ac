package providers

import (
	"fitviz/internal/structures"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// Timer is the part of *time.Timer the reminder scheduler needs.
type Timer interface {
	Stop() bool
}

// Clock is the single source of "now" and "today" for the stores and the
// reminder scheduler.
type Clock interface {
	Now() time.Time
	Today() string
	Location() *time.Location
	AfterFunc(d time.Duration, f func()) Timer
}

type SystemClock struct {
	loc *time.Location
}

func NewClockProvider(conf *structures.Config) (Clock, error) {
	tz := conf.Clock.Timezone
	if tz == "" {
		tz = "Local"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	return &SystemClock{loc: loc}, nil
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *SystemClock) Today() string {
	return c.Now().Format(DateLayout)
}

func (c *SystemClock) Location() *time.Location {
	return c.loc
}

func (c *SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
