package luadt

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/civil"
	"github.com/luadt/luadt/dtlib"
)

// timeParts decomposes a native clock time for the host's microsecond
// model. A stored leap second (nanoseconds >= 1e9) is collapsed by
// dropping one full second of nanoseconds; the caller must then emit the
// leap-second warning. Sub-microsecond precision is truncated.
func timeParts(t civil.TimeOfDay) (hour, minute, second, micro int, leap bool) {
	ns := t.Nanosecond
	if ns >= 1_000_000_000 {
		ns -= 1_000_000_000
		leap = true
	}
	return t.Hour, t.Minute, t.Second, ns / 1000, leap
}

// PushTimeOfDay converts a clock time to a host time object. A leap
// second is collapsed into the preceding second and reported once on the
// host's warning channel; the conversion still succeeds.
func PushTimeOfDay(l *lua.State, t civil.TimeOfDay) error {
	hour, minute, second, micro, leap := timeParts(t)

	top := l.Top()
	if err := pushConstructor(l, "time"); err != nil {
		return err
	}
	l.PushInteger(hour)
	l.PushInteger(minute)
	l.PushInteger(second)
	l.PushInteger(micro)
	if err := l.ProtectedCall(4, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("time: %w", err)
	}
	if leap {
		warnTruncatedLeapSecond(l)
	}
	return nil
}

// ToTimeOfDay reads the host time at index at microsecond precision. Host
// times cannot carry a leap second, so none comes back.
func ToTimeOfDay(l *lua.State, index int) (civil.TimeOfDay, error) {
	v, err := checkKind(l, index, dtlib.TimeType)
	if err != nil {
		return civil.TimeOfDay{}, err
	}
	t := v.(*dtlib.Time)
	nt, err := civil.NewTimeOfDay(t.Hour, t.Minute, t.Second, t.Microsecond*1000)
	if err != nil {
		return civil.TimeOfDay{}, &RangeError{Reason: "invalid or out-of-range time"}
	}
	return nt, nil
}
