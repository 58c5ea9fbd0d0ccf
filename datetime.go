package luadt

import (
	"fmt"
	"time"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/civil"
	"github.com/luadt/luadt/dtlib"
)

// PushDateTime converts a naive date-time to a host datetime with a nil
// tzinfo. Leap-second collapsing matches PushTimeOfDay.
func PushDateTime(l *lua.State, dt civil.DateTime) error {
	hour, minute, second, micro, leap := timeParts(dt.Time)

	top := l.Top()
	if err := pushConstructor(l, "datetime"); err != nil {
		return err
	}
	l.PushInteger(dt.Date.Year)
	l.PushInteger(int(dt.Date.Month))
	l.PushInteger(dt.Date.Day)
	l.PushInteger(hour)
	l.PushInteger(minute)
	l.PushInteger(second)
	l.PushInteger(micro)
	if err := l.ProtectedCall(7, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("datetime: %w", err)
	}
	if leap {
		warnTruncatedLeapSecond(l)
	}
	return nil
}

// PushOffsetDateTime converts an offset-qualified date-time to an aware
// host datetime. The offset becomes a host timezone first; if that fails,
// the whole export fails before any datetime is built.
func PushOffsetDateTime(l *lua.State, dt civil.OffsetDateTime) error {
	top := l.Top()
	if err := PushOffset(l, dt.Offset); err != nil {
		return err
	}

	hour, minute, second, micro, leap := timeParts(dt.DateTime.Time)
	if err := pushConstructor(l, "datetime"); err != nil {
		l.SetTop(top)
		return err
	}
	l.PushInteger(dt.DateTime.Date.Year)
	l.PushInteger(int(dt.DateTime.Date.Month))
	l.PushInteger(dt.DateTime.Date.Day)
	l.PushInteger(hour)
	l.PushInteger(minute)
	l.PushInteger(second)
	l.PushInteger(micro)
	l.PushValue(top + 1)
	if err := l.ProtectedCall(8, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("datetime: %w", err)
	}
	l.Remove(-2)
	if leap {
		warnTruncatedLeapSecond(l)
	}
	return nil
}

// ToDateTime reads a naive host datetime. A value carrying a tzinfo is
// refused rather than silently stripped.
func ToDateTime(l *lua.State, index int) (civil.DateTime, error) {
	v, err := checkKind(l, index, dtlib.DateTimeType)
	if err != nil {
		return civil.DateTime{}, err
	}
	dt := v.(*dtlib.DateTime)
	if dt.TZ != nil {
		return civil.DateTime{}, &TzInfoError{WantTzInfo: false}
	}
	return nativeDateTime(dt)
}

// ToOffsetDateTime reads an aware host datetime, reducing its tzinfo to a
// fixed UTC offset through the same query path as ToOffset.
func ToOffsetDateTime(l *lua.State, index int) (civil.OffsetDateTime, error) {
	index = l.AbsIndex(index)
	v, err := checkKind(l, index, dtlib.DateTimeType)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	dt := v.(*dtlib.DateTime)
	if dt.TZ == nil {
		return civil.OffsetDateTime{}, &TzInfoError{WantTzInfo: true}
	}
	naive, err := nativeDateTime(dt)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}

	l.Field(index, "tzinfo")
	off, err := ToOffset(l, -1)
	l.Pop(1)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return civil.OffsetDateTime{DateTime: naive, Offset: off}, nil
}

func nativeDateTime(dt *dtlib.DateTime) (civil.DateTime, error) {
	d, err := civil.NewDate(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day)
	if err != nil {
		return civil.DateTime{}, &RangeError{Reason: "invalid or out-of-range date"}
	}
	t, err := civil.NewTimeOfDay(dt.Time.Hour, dt.Time.Minute, dt.Time.Second, dt.Time.Microsecond*1000)
	if err != nil {
		return civil.DateTime{}, &RangeError{Reason: "invalid or out-of-range time"}
	}
	return civil.DateTime{Date: d, Time: t}, nil
}

// PushTime converts a time.Time to an aware host datetime carrying the
// fixed zone offset of t's location at that instant. Monotonic clock
// readings do not survive, and sub-microsecond precision is truncated.
func PushTime(l *lua.State, t time.Time) error {
	return PushOffsetDateTime(l, civil.OffsetDateTimeOf(t))
}

// ToTime reads an aware host datetime as a time.Time in a fixed-offset
// location.
func ToTime(l *lua.State, index int) (time.Time, error) {
	dt, err := ToOffsetDateTime(l, index)
	if err != nil {
		return time.Time{}, err
	}
	return dt.GoTime(), nil
}
