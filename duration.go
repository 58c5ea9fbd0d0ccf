package luadt

import (
	"fmt"
	"time"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/civil"
	"github.com/luadt/luadt/dtlib"
)

// PushDuration converts d to a host timedelta and leaves it on top of the
// stack. The value is split into whole days, remainder seconds and
// remainder microseconds; sub-microsecond precision is truncated, never
// rounded. The host constructor normalizes and bound-checks the day
// count, so a span beyond the host range fails with the constructor's
// own error.
func PushDuration(l *lua.State, d civil.Duration) error {
	days := d.Seconds / 86400
	seconds := d.Seconds % 86400
	micros := int64(d.Nanoseconds) / 1000

	top := l.Top()
	if err := pushConstructor(l, "timedelta"); err != nil {
		return err
	}
	l.PushInteger(int(days))
	l.PushInteger(int(seconds))
	l.PushInteger(int(micros))
	if err := l.ProtectedCall(3, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("timedelta: %w", err)
	}
	return nil
}

// ToDuration reads the host timedelta at index. Host deltas are a strict
// subset of the native range, so every well-formed delta converts.
func ToDuration(l *lua.State, index int) (civil.Duration, error) {
	v, err := checkKind(l, index, dtlib.DeltaType)
	if err != nil {
		return civil.Duration{}, err
	}
	d := v.(*dtlib.Delta)
	return civil.NewDuration(d.Days*86400+d.Seconds, d.Microseconds*1000), nil
}

// PushGoDuration converts a time.Duration through the timedelta path.
func PushGoDuration(l *lua.State, d time.Duration) error {
	return PushDuration(l, civil.DurationOf(d))
}

// ToGoDuration reads a host timedelta as a time.Duration. Host deltas can
// exceed time.Duration's ±292 year range, which is a RangeError here.
func ToGoDuration(l *lua.State, index int) (time.Duration, error) {
	d, err := ToDuration(l, index)
	if err != nil {
		return 0, err
	}
	gd, ok := d.GoDuration()
	if !ok {
		return 0, &RangeError{Reason: "timedelta out of range for time.Duration"}
	}
	return gd, nil
}
