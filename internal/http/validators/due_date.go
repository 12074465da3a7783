package validators

import (
	"regexp"
	"time"

	apperrors "todo-store.com/todo-store/internal/errors"
	"todo-store.com/todo-store/internal/views"
)

var hhmm = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

func ValidateTime(s string) error {
	if s == "" || hhmm.MatchString(s) {
		return nil
	}
	return apperrors.ErrInvalidTime
}

// ParseDueDate resolves the dueDate/time pair a client sends into the
// stored timestamp and its HH:MM mirror. An RFC 3339 date carries its own
// time of day; a plain date is combined with clock, or the next full hour
// when clock is empty. An empty date means no due date.
func ParseDueDate(date, clock string, now time.Time, loc *time.Location) (time.Time, string, error) {
	if err := ValidateTime(clock); err != nil {
		return time.Time{}, "", err
	}
	if date == "" {
		return time.Time{}, clock, nil
	}

	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t, t.In(loc).Format("15:04"), nil
	}

	day, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, "", apperrors.ErrInvalidDueDate
	}
	if clock == "" {
		clock = views.DefaultTime(now.In(loc))
	}
	at, _ := time.Parse("15:04", clock)
	due := time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, loc)
	return due, clock, nil
}
