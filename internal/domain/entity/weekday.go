package entity

import (
	"fmt"
	"strings"
)

// WeekdayMask is a 7-bit set of active weekdays. Bit i is weekday i with
// 0=Monday .. 6=Sunday, the numbering used by pkg/localtime. Any day picker
// facing users must map through DayNames/ParseWeekdayMask, never through
// time.Weekday, which counts from Sunday.
type WeekdayMask uint8

const (
	Monday WeekdayMask = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	Weekdays WeekdayMask = Monday | Tuesday | Wednesday | Thursday | Friday
	Weekend  WeekdayMask = Saturday | Sunday
	EveryDay WeekdayMask = Weekdays | Weekend
)

// DayNames are the short names for weekdays 0..6.
var DayNames = [7]string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var dayFullNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Has reports whether weekday (0=Monday) is active.
func (m WeekdayMask) Has(weekday int) bool {
	if weekday < 0 || weekday > 6 {
		return false
	}
	return m&(1<<uint(weekday)) != 0
}

// Valid reports whether the mask has at least one day and no bits above Sunday.
func (m WeekdayMask) Valid() bool {
	return m != 0 && m&^EveryDay == 0
}

// String renders the mask as comma separated day names, e.g. "mon,wed,fri".
func (m WeekdayMask) String() string {
	if m == EveryDay {
		return "daily"
	}
	days := make([]string, 0, 7)
	for i, name := range DayNames {
		if m.Has(i) {
			days = append(days, name)
		}
	}
	return strings.Join(days, ",")
}

// ParseWeekdayMask accepts "daily", "weekdays", "weekend", or a comma list of
// short or full day names ("mon,wednesday") and numbers with 0=Monday ("0,2").
func ParseWeekdayMask(s string) (WeekdayMask, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "daily", "everyday", "all":
		return EveryDay, nil
	case "weekdays":
		return Weekdays, nil
	case "weekend":
		return Weekend, nil
	case "":
		return 0, fmt.Errorf("empty day list")
	}

	var mask WeekdayMask
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		day := dayIndex(part)
		if day < 0 {
			return 0, fmt.Errorf("unknown day %q", part)
		}
		mask |= 1 << uint(day)
	}
	return mask, nil
}

func dayIndex(s string) int {
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return int(s[0] - '0')
	}
	for i := range DayNames {
		if s == DayNames[i] || s == dayFullNames[i] {
			return i
		}
	}
	return -1
}
