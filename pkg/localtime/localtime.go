// Package localtime converts between UTC instants and a user's local
// calendar. Weekdays are numbered 0=Monday through 6=Sunday everywhere in
// this service; habit weekday masks use the same numbering (bit i = day i).
package localtime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrInvalidTimezone is returned when a timezone identifier does not resolve.
var ErrInvalidTimezone = errors.New("invalid timezone")

const dateLayout = "2006-01-02"

// Date is a calendar date without a zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns a normalized date, so NewDate(2026, 1, 32) is February 1st.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

// AddDays returns the date n calendar days later (or earlier for n < 0).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Weekday returns the day of week with 0=Monday .. 6=Sunday.
func (d Date) Weekday() int {
	return MondayFirst(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday())
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MondayFirst converts Go's Sunday-first weekday to 0=Monday .. 6=Sunday.
func MondayFirst(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// LocalTime is a UTC instant projected onto a zone's wall clock.
type LocalTime struct {
	Weekday int
	Hour    int
	Minute  int
	Date    Date
}

var (
	locations sync.Map // string -> *time.Location

	offsetRe = regexp.MustCompile(`^(?i:UTC|GMT)?\s*([+-])(\d{1,2})(?::?(\d{2}))?$`)
)

// LoadLocation resolves an IANA zone name, "UTC", or a fixed offset such as
// "+03:00", "UTC+3" or "GMT-05:30". Resolved locations are cached.
func LoadLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	if loc, ok := locations.Load(tz); ok {
		return loc.(*time.Location), nil
	}

	loc, err := resolve(tz)
	if err != nil {
		return nil, err
	}

	actual, _ := locations.LoadOrStore(tz, loc)
	return actual.(*time.Location), nil
}

func resolve(tz string) (*time.Location, error) {
	if m := offsetRe.FindStringSubmatch(tz); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil, fmt.Errorf("%w: offset %q out of range", ErrInvalidTimezone, tz)
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(tz, offset), nil
	}

	// time.LoadLocation accepts "" and "Local"; neither names a user's zone.
	if strings.EqualFold(tz, "local") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, tz, err)
	}
	return loc, nil
}

// DayRange returns the half-open UTC interval [start, end) covering the
// local calendar day d in loc. The span follows the zone rules, so it is
// 23h or 25h on DST transition days. A local midnight that falls in a DST
// gap starts the range at the first instant that exists on that day.
func DayRange(d Date, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
	end := time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, loc)
	return start.UTC(), end.UTC()
}

// LocalDayToUTCRange is DayRange for a timezone identifier.
func LocalDayToUTCRange(d Date, tz string) (time.Time, time.Time, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, end := DayRange(d, loc)
	return start, end, nil
}

// Project returns the wall-clock fields of instant in loc.
func Project(instant time.Time, loc *time.Location) LocalTime {
	local := instant.In(loc)
	return LocalTime{
		Weekday: MondayFirst(local.Weekday()),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
		Date:    DateOf(local),
	}
}

// UTCToLocal is Project for a timezone identifier.
func UTCToLocal(instant time.Time, tz string) (LocalTime, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return LocalTime{}, err
	}
	return Project(instant, loc), nil
}

// ScheduledInstant returns the UTC instant at which the wall clock in loc
// reads hour:minute on date d. A wall time skipped by a spring-forward gap
// moves forward by the gap length (02:30 becomes 03:30); a wall time that
// repeats on fall-back resolves to a single instant.
func ScheduledInstant(d Date, hour, minute int, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, loc).UTC()
}
