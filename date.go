package luadt

import (
	"fmt"
	"time"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/civil"
	"github.com/luadt/luadt/dtlib"
)

// PushDate converts a calendar date to a host date object. Years outside
// the host's supported range fail with the host constructor's error.
func PushDate(l *lua.State, d civil.Date) error {
	top := l.Top()
	if err := pushConstructor(l, "date"); err != nil {
		return err
	}
	l.PushInteger(d.Year)
	l.PushInteger(int(d.Month))
	l.PushInteger(d.Day)
	if err := l.ProtectedCall(3, 1, 0); err != nil {
		l.SetTop(top)
		return fmt.Errorf("date: %w", err)
	}
	return nil
}

// ToDate reads the host date at index, re-validating the fields through
// the native constructor.
func ToDate(l *lua.State, index int) (civil.Date, error) {
	v, err := checkKind(l, index, dtlib.DateType)
	if err != nil {
		return civil.Date{}, err
	}
	d := v.(*dtlib.Date)
	nd, err := civil.NewDate(d.Year, time.Month(d.Month), d.Day)
	if err != nil {
		return civil.Date{}, &RangeError{Reason: "invalid or out-of-range date"}
	}
	return nd, nil
}
