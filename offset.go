package luadt

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/civil"
)

// PushOffset converts a fixed UTC offset to a host timezone object: a
// seconds-only timedelta handed to the host timezone constructor, which
// derives the display name.
func PushOffset(l *lua.State, o civil.UtcOffset) error {
	top := l.Top()
	if err := pushConstructor(l, "timedelta"); err != nil {
		return err
	}
	l.PushInteger(0)
	l.PushInteger(o.Seconds())
	l.PushInteger(0)
	if err := l.ProtectedCall(3, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("timedelta: %w", err)
	}
	if err := pushConstructor(l, "timezone"); err != nil {
		l.SetTop(top)
		return err
	}
	l.Insert(-2)
	if err := l.ProtectedCall(1, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("timezone: %w", err)
	}
	return nil
}

// ToOffset reduces the tzinfo-like value at index to a fixed UTC offset.
// Any table or userdata answering utcoffset() qualifies, not only host
// timezone objects. The offset query passes a nil reference instant, the
// only probe that works without choosing a date; zone-database style
// timezones answer nil to it and are rejected as not fixed. A sub-second
// part in the returned delta is dropped.
func ToOffset(l *lua.State, index int) (civil.UtcOffset, error) {
	index = l.AbsIndex(index)
	switch l.TypeOf(index) {
	case lua.TypeTable, lua.TypeUserData:
	default:
		return civil.UtcOffset{}, &TypeError{Want: "a tzinfo value", Got: describe(l, index)}
	}

	top := l.Top()
	// The attribute fetch runs protected: __index may be a metamethod and
	// is allowed to raise.
	l.PushGoFunction(func(l *lua.State) int {
		l.Field(1, "utcoffset")
		return 1
	})
	l.PushValue(index)
	if err := l.ProtectedCall(1, 1, 0); err != nil {
		l.SetTop(top)
		return civil.UtcOffset{}, &TypeError{Want: "a tzinfo value", Got: describe(l, index)}
	}
	if !l.IsFunction(-1) {
		l.SetTop(top)
		return civil.UtcOffset{}, &TypeError{Want: "a tzinfo value", Got: describe(l, index)}
	}

	l.PushValue(index)
	l.PushNil()
	if err := l.ProtectedCall(2, 1, 0); err != nil {
		l.SetTop(top)
		return civil.UtcOffset{}, fmt.Errorf("utcoffset: %w", err)
	}
	if l.IsNil(-1) {
		zone := displayString(l, index)
		l.SetTop(top)
		return civil.UtcOffset{}, &NotFixedOffsetError{Zone: zone}
	}

	d, err := ToDuration(l, -1)
	l.SetTop(top)
	if err != nil {
		return civil.UtcOffset{}, err
	}
	off, err := civil.OffsetFromSeconds(int(d.Seconds))
	if err != nil {
		return civil.UtcOffset{}, &RangeError{Reason: "fixed offset out of bounds"}
	}
	return off, nil
}
