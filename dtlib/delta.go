package dtlib

import (
	"fmt"

	"github.com/Shopify/go-lua"
)

// MaxDeltaDays bounds the normalized day component of a timedelta.
const MaxDeltaDays = 999_999_999

// Delta is the payload of a datetime.timedelta userdata. Values are always
// normalized: 0 <= Seconds < 86400, 0 <= Microseconds < 1e6, and
// |Days| <= MaxDeltaDays, with any remaining sign carried by Days.
type Delta struct {
	Days         int64
	Seconds      int64
	Microseconds int64
}

// datetime.timedelta(days, seconds, microseconds), all arguments optional,
// any sign, normalized on construction.
func newDelta(l *lua.State) int {
	days := int64(lua.OptInteger(l, 1, 0))
	seconds := int64(lua.OptInteger(l, 2, 0))
	micros := int64(lua.OptInteger(l, 3, 0))

	d, ok := normalizeDelta(days, seconds, micros)
	if !ok {
		lua.Errorf(l, "timedelta: days=%d; must have magnitude <= %d", int(d.Days), MaxDeltaDays)
		panic("unreachable")
	}
	pushDelta(l, d)
	return 1
}

func normalizeDelta(days, seconds, micros int64) (*Delta, bool) {
	seconds += floorDiv(micros, 1_000_000)
	micros = floorMod(micros, 1_000_000)
	days += floorDiv(seconds, 86400)
	seconds = floorMod(seconds, 86400)
	d := &Delta{Days: days, Seconds: seconds, Microseconds: micros}
	return d, days >= -MaxDeltaDays && days <= MaxDeltaDays
}

func pushDelta(l *lua.State, d *Delta) {
	l.PushUserData(d)
	lua.SetMetaTableNamed(l, DeltaType)
}

func deltaIndex(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DeltaType).(*Delta)
	switch key := lua.CheckString(l, 2); key {
	case "days":
		l.PushInteger(int(d.Days))
	case "seconds":
		l.PushInteger(int(d.Seconds))
	case "microseconds":
		l.PushInteger(int(d.Microseconds))
	case "total_seconds":
		l.PushGoFunction(deltaTotalSeconds)
	default:
		l.PushNil()
	}
	return 1
}

func deltaTotalSeconds(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DeltaType).(*Delta)
	l.PushNumber(float64(d.Days)*86400 + float64(d.Seconds) + float64(d.Microseconds)/1e6)
	return 1
}

func deltaEq(l *lua.State) int {
	a := lua.CheckUserData(l, 1, DeltaType).(*Delta)
	b := lua.CheckUserData(l, 2, DeltaType).(*Delta)
	l.PushBoolean(*a == *b)
	return 1
}

func deltaString(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DeltaType).(*Delta)
	l.PushString(d.String())
	return 1
}

func (d *Delta) String() string {
	return fmt.Sprintf("datetime.timedelta(%d, %d, %d)", d.Days, d.Seconds, d.Microseconds)
}
