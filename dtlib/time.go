package dtlib

import (
	"fmt"

	"github.com/Shopify/go-lua"
)

// Time is the payload of a datetime.time userdata. No offset is attached;
// the model carries offsets on datetime and timezone objects only.
type Time struct {
	Hour        int
	Minute      int
	Second      int
	Microsecond int
}

// datetime.time(hour, minute, second, microsecond), all arguments optional.
func newTime(l *lua.State) int {
	hour := lua.OptInteger(l, 1, 0)
	minute := lua.OptInteger(l, 2, 0)
	second := lua.OptInteger(l, 3, 0)
	micro := lua.OptInteger(l, 4, 0)
	checkTimeArgs(l, hour, minute, second, micro)
	pushTime(l, &Time{Hour: hour, Minute: minute, Second: second, Microsecond: micro})
	return 1
}

func checkTimeArgs(l *lua.State, hour, minute, second, micro int) {
	switch {
	case hour < 0 || hour > 23:
		lua.Errorf(l, "time: hour %d is out of range", hour)
	case minute < 0 || minute > 59:
		lua.Errorf(l, "time: minute %d is out of range", minute)
	case second < 0 || second > 59:
		lua.Errorf(l, "time: second %d is out of range", second)
	case micro < 0 || micro > 999999:
		lua.Errorf(l, "time: microsecond %d is out of range", micro)
	default:
		return
	}
	panic("unreachable")
}

func pushTime(l *lua.State, t *Time) {
	l.PushUserData(t)
	lua.SetMetaTableNamed(l, TimeType)
}

func timeIndex(l *lua.State) int {
	t := lua.CheckUserData(l, 1, TimeType).(*Time)
	switch key := lua.CheckString(l, 2); key {
	case "hour":
		l.PushInteger(t.Hour)
	case "minute":
		l.PushInteger(t.Minute)
	case "second":
		l.PushInteger(t.Second)
	case "microsecond":
		l.PushInteger(t.Microsecond)
	case "isoformat":
		l.PushGoFunction(timeISOFormat)
	default:
		l.PushNil()
	}
	return 1
}

func timeISOFormat(l *lua.State) int {
	t := lua.CheckUserData(l, 1, TimeType).(*Time)
	l.PushString(t.String())
	return 1
}

func timeEq(l *lua.State) int {
	a := lua.CheckUserData(l, 1, TimeType).(*Time)
	b := lua.CheckUserData(l, 2, TimeType).(*Time)
	l.PushBoolean(*a == *b)
	return 1
}

func timeString(l *lua.State) int {
	t := lua.CheckUserData(l, 1, TimeType).(*Time)
	l.PushString(t.String())
	return 1
}

func (t *Time) String() string {
	if t.Microsecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%06d", t.Hour, t.Minute, t.Second, t.Microsecond)
}
