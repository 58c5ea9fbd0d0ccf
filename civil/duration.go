package civil

import (
	"fmt"
	"math"
	"time"
)

// Duration is a signed span of time with nanosecond resolution, stored as
// whole seconds plus a nanosecond remainder. Seconds and Nanoseconds always
// carry the same sign, and |Nanoseconds| < 1e9. The range is much wider
// than time.Duration's ±292 years.
type Duration struct {
	Seconds     int64
	Nanoseconds int32
}

// NewDuration builds a normalized Duration from seconds and nanoseconds.
// The two components may disagree in sign or carry overflow; the result has
// matching signs and a sub-second nanosecond remainder.
func NewDuration(seconds, nanoseconds int64) Duration {
	seconds += nanoseconds / 1e9
	nanoseconds %= 1e9
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += 1e9
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= 1e9
	}
	return Duration{Seconds: seconds, Nanoseconds: int32(nanoseconds)}
}

// DurationFromDays returns a duration of the given number of whole days.
func DurationFromDays(days int64) Duration {
	return Duration{Seconds: days * 86400}
}

// DurationFromMicroseconds returns a duration of the given number of
// microseconds.
func DurationFromMicroseconds(us int64) Duration {
	return NewDuration(us/1e6, (us%1e6)*1000)
}

// DurationOf converts a time.Duration. The conversion is exact.
func DurationOf(d time.Duration) Duration {
	return Duration{Seconds: int64(d) / 1e9, Nanoseconds: int32(int64(d) % 1e9)}
}

// Days returns the whole-day component, truncated toward zero.
func (d Duration) Days() int64 {
	return d.Seconds / 86400
}

// GoDuration converts d to a time.Duration. Reports false when d is outside
// the int64 nanosecond range.
func (d Duration) GoDuration() (time.Duration, bool) {
	if d.Seconds >= 0 {
		if d.Seconds > (math.MaxInt64-int64(d.Nanoseconds))/1e9 {
			return 0, false
		}
	} else {
		if d.Seconds < (math.MinInt64-int64(d.Nanoseconds))/1e9 {
			return 0, false
		}
	}
	return time.Duration(d.Seconds*1e9 + int64(d.Nanoseconds)), true
}

func (d Duration) String() string {
	sign := ""
	s, ns := d.Seconds, int64(d.Nanoseconds)
	if s < 0 || ns < 0 {
		sign = "-"
		s, ns = -s, -ns
	}
	if ns == 0 {
		return fmt.Sprintf("%s%ds", sign, s)
	}
	return fmt.Sprintf("%s%d.%09ds", sign, s, ns)
}
