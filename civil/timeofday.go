package civil

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time with nanosecond resolution. Nanosecond values of
// 1e9 or more encode a 61st (leap) second stacked onto the stored second;
// the valid range is [0, 2e9).
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// NewTimeOfDay validates the clock fields. A leap second is expressed by a
// Nanosecond value of at least 1e9, not by Second == 60.
func NewTimeOfDay(hour, minute, second, nanosecond int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("second %d out of range", second)
	}
	if nanosecond < 0 || nanosecond >= 2_000_000_000 {
		return TimeOfDay{}, fmt.Errorf("nanosecond %d out of range", nanosecond)
	}
	return TimeOfDay{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, nil
}

// TimeOfDayOf returns the clock time of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{Hour: h, Minute: m, Second: s, Nanosecond: t.Nanosecond()}
}

func (t TimeOfDay) String() string {
	if t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanosecond)
}
