package providers

import (
	"errors"
	"fitviz/internal/structures"
	"fmt"
	"github.com/gookit/validate"
	"time"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %w", v.Errors)
	}

	switch cv.conf.Storage.Driver {
	case "file":
		if cv.conf.Storage.Dir == "" {
			return errors.New("invalid config: storage.dir is required for the file driver")
		}
	case "sqlite":
		if cv.conf.Storage.Dsn == "" {
			return errors.New("invalid config: storage.dsn is required for the sqlite driver")
		}
	}

	if cv.conf.Tracker.SleepLogLimit < 0 || cv.conf.Tracker.SleepLogLimit > 30 {
		return fmt.Errorf("invalid config: tracker.sleepLogLimit must be within 0..30, got %d", cv.conf.Tracker.SleepLogLimit)
	}

	if tz := cv.conf.Clock.Timezone; tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid config: clock.timezone: %w", err)
		}
	}

	for i := range cv.conf.Reminders {
		r := &cv.conf.Reminders[i]
		rv := validate.Struct(r)
		if !rv.Validate() {
			return fmt.Errorf("invalid config: reminders[%d]: %w", i, rv.Errors)
		}
		if (r.At == "") == (r.Interval <= 0) {
			return fmt.Errorf("invalid config: reminders[%d]: exactly one of at or interval must be set", i)
		}
		if r.At != "" {
			if _, err := time.Parse("15:04", r.At); err != nil {
				return fmt.Errorf("invalid config: reminders[%d]: at must be HH:MM", i)
			}
		}
	}

	return nil
}
