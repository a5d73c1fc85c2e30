package logbook

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ErrBadPeriod is returned by ParsePeriod for names it does not recognize.
var ErrBadPeriod = errors.New("unknown period")

// Period is the granularity at which entries are bucketed into separate log files.
// The zero value is Day, which is also the default used by NewBook.
type Period int

const (
	Day Period = iota
	Week
	Month
	Quarter
	Year
)

func (p Period) String() string {
	switch p {
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return "day"
	}
}

// ParsePeriod maps a period name, as found in the configuration file, to a Period.
// The empty string parses to Day so that an absent configuration key means the
// default rather than an error.
func ParsePeriod(name string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "quarter":
		return Quarter, nil
	case "year":
		return Year, nil
	default:
		return Day, fmt.Errorf("%q: %w", name, ErrBadPeriod)
	}
}

// Filename maps a date to the path of the log file for the period containing it,
// relative to the logbook root. It is a pure function of its arguments and never
// touches the filesystem. Within one period the paths sort lexically in
// chronological order, which the rollover logic relies on.
func (p Period) Filename(date time.Time) string {
	switch p {
	case Week:
		year, week := date.ISOWeek()
		return filepath.Join(fmt.Sprintf("%04d", year), fmt.Sprintf("W%02d.todo", week))
	case Month:
		return date.Format("2006-01") + ".todo"
	case Quarter:
		return fmt.Sprintf("%04d-Q%d.todo", date.Year(), quarterOf(date.Month()))
	case Year:
		return date.Format("2006") + ".todo"
	default:
		return date.Format(filepath.Join("2006", "01", "02")) + ".todo"
	}
}

// ParseFilename is the inverse of Filename, up to period granularity: it recovers,
// from a root-relative path, a date within the period the file covers. The second
// return value reports whether the path matched the period's naming convention.
func (p Period) ParseFilename(rel string) (time.Time, bool) {
	rel = filepath.ToSlash(rel)
	switch p {
	case Week:
		var year, week int
		if n, err := fmt.Sscanf(rel, "%d/W%d.todo", &year, &week); n == 2 && err == nil {
			return weekStart(year, week), true
		}
	case Month:
		if t, err := time.Parse("2006-01.todo", rel); err == nil {
			return t, true
		}
	case Quarter:
		var year, quarter int
		if n, err := fmt.Sscanf(rel, "%d-Q%d.todo", &year, &quarter); n == 2 && err == nil && quarter >= 1 && quarter <= 4 {
			return time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC), true
		}
	case Year:
		if t, err := time.Parse("2006.todo", rel); err == nil {
			return t, true
		}
	default:
		if t, err := time.Parse("2006/01/02.todo", rel); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Contains reports whether t falls in the same period as now.
func (p Period) Contains(t, now time.Time) bool {
	switch p {
	case Week:
		ty, tw := t.ISOWeek()
		ny, nw := now.ISOWeek()
		return ty == ny && tw == nw
	case Month:
		return t.Month() == now.Month() && t.Year() == now.Year()
	case Quarter:
		return quarterOf(t.Month()) == quarterOf(now.Month()) && t.Year() == now.Year()
	case Year:
		return t.Year() == now.Year()
	default:
		return t.Day() == now.Day() && t.Month() == now.Month() && t.Year() == now.Year()
	}
}

// Stub is the human-readable date label for the period containing date, used in the
// header line of freshly created files.
func (p Period) Stub(date time.Time) string {
	switch p {
	case Week:
		year, week := date.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case Month:
		return date.Format("2006-01")
	case Quarter:
		return fmt.Sprintf("%04d-Q%d", date.Year(), quarterOf(date.Month()))
	case Year:
		return date.Format("2006")
	default:
		return date.Format("2006-01-02")
	}
}

func quarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}

// weekStart returns the Monday of the given ISO week. January 4 is always in week 1.
func weekStart(year, week int) time.Time {
	t := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, 1-weekday+(week-1)*7)
}
