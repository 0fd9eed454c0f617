package slot

import (
	"time"

	"slot-booking/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.New("invalid booking date")

// Date is a civil calendar date with no time zone.
type Date struct {
	t time.Time
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.Mark(errs.Wrapf(err, "date %q", s), ErrInvalidDate)
	}
	return Date{t: t}, nil
}

// DateOf takes the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// Long renders the date for customers, e.g. "Sunday, 1 March 2026".
func (d Date) Long() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format("Monday, 2 January 2006")
}
