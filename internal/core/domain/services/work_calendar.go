package services

import (
	"fmt"
	"time"

	"replenish/internal/pkg/errs"
)

// BusinessWindow is the daily span of working hours, e.g. 09:00-17:00.
// Hours are whole clock hours; StartHour is inclusive, EndHour exclusive.
type BusinessWindow struct {
	StartHour int
	EndHour   int
}

// NewBusinessWindow validates the daily working span.
func NewBusinessWindow(startHour, endHour int) (BusinessWindow, error) {
	if startHour < 0 || startHour > 23 {
		return BusinessWindow{}, errs.NewValueIsOutOfRangeError("startHour", startHour, 0, 23)
	}
	if endHour < 1 || endHour > 24 {
		return BusinessWindow{}, errs.NewValueIsOutOfRangeError("endHour", endHour, 1, 24)
	}
	if startHour >= endHour {
		return BusinessWindow{}, errs.NewValueIsInvalidErrorWithCause("businessWindow",
			fmt.Errorf("start hour %d is not before end hour %d", startHour, endHour))
	}
	return BusinessWindow{StartHour: startHour, EndHour: endHour}, nil
}

// WorkCalendar computes working-hours deadlines against a business window.
//
// The deadline rule: add the offset as clock hours, then roll the result
// forward to the next instant inside the business window on a non-weekend
// day. Weekends are skipped entirely and partial days are clipped to the
// window, so a receipt late on Friday lands on Monday at window start rather
// than somewhere inside the weekend.
type WorkCalendar struct {
	window BusinessWindow
}

// NewWorkCalendar creates a calendar over the given business window.
func NewWorkCalendar(window BusinessWindow) WorkCalendar {
	return WorkCalendar{window: window}
}

// Window returns the configured business window.
func (c WorkCalendar) Window() BusinessWindow {
	return c.window
}

// AddWorkingHours returns the auto-close deadline for an event at from with
// the given working-hours offset.
func (c WorkCalendar) AddWorkingHours(from time.Time, hours int) time.Time {
	deadline := from.Add(time.Duration(hours) * time.Hour)
	return c.nextWorkingInstant(deadline)
}

// nextWorkingInstant rolls t forward until it falls inside the business
// window on a weekday. A time already inside the window is returned as is.
func (c WorkCalendar) nextWorkingInstant(t time.Time) time.Time {
	for {
		if isWeekend(t) {
			t = c.startOfNextDay(t)
			continue
		}
		if t.Hour() < c.window.StartHour {
			t = time.Date(t.Year(), t.Month(), t.Day(), c.window.StartHour, 0, 0, 0, t.Location())
			continue
		}
		if t.Hour() >= c.window.EndHour {
			t = c.startOfNextDay(t)
			continue
		}
		return t
	}
}

func (c WorkCalendar) startOfNextDay(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	return time.Date(next.Year(), next.Month(), next.Day(), c.window.StartHour, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
