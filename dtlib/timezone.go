package dtlib

import (
	"fmt"

	"github.com/Shopify/go-lua"
)

// Timezone is the payload of a datetime.timezone userdata: a fixed offset
// from UTC. Zone-database timezones are outside this object model; anything
// answering utcoffset() can still act as a tzinfo from Lua.
type Timezone struct {
	Offset Delta
	Name   string
}

// datetime.timezone(delta [, name]). The delta must be strictly between
// -24 hours and +24 hours.
func newTimezone(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DeltaType).(*Delta)
	name := lua.OptString(l, 2, "")

	// Normalized form: within ±24h means Days is 0, or -1 with a nonzero
	// sub-day remainder.
	if !(d.Days == 0 || (d.Days == -1 && (d.Seconds > 0 || d.Microseconds > 0))) {
		lua.Errorf(l, "timezone: offset must be strictly between -24 hours and +24 hours")
		panic("unreachable")
	}

	tz := &Timezone{Offset: *d, Name: name}
	if tz.Name == "" {
		tz.Name = "UTC" + tz.offsetSuffix()
	}
	pushTimezone(l, tz)
	return 1
}

func pushTimezone(l *lua.State, tz *Timezone) {
	l.PushUserData(tz)
	lua.SetMetaTableNamed(l, TimezoneType)
}

func timezoneIndex(l *lua.State) int {
	lua.CheckUserData(l, 1, TimezoneType)
	switch key := lua.CheckString(l, 2); key {
	case "utcoffset":
		l.PushGoFunction(timezoneUTCOffset)
	case "tzname":
		l.PushGoFunction(timezoneName)
	default:
		l.PushNil()
	}
	return 1
}

// tz:utcoffset(dt). A fixed offset ignores the reference instant, so nil
// is an acceptable argument and the result is always a timedelta.
func timezoneUTCOffset(l *lua.State) int {
	tz := lua.CheckUserData(l, 1, TimezoneType).(*Timezone)
	d := tz.Offset
	pushDelta(l, &d)
	return 1
}

func timezoneName(l *lua.State) int {
	tz := lua.CheckUserData(l, 1, TimezoneType).(*Timezone)
	l.PushString(tz.Name)
	return 1
}

func timezoneEq(l *lua.State) int {
	a := lua.CheckUserData(l, 1, TimezoneType).(*Timezone)
	b := lua.CheckUserData(l, 2, TimezoneType).(*Timezone)
	l.PushBoolean(a.Offset == b.Offset)
	return 1
}

func timezoneString(l *lua.State) int {
	tz := lua.CheckUserData(l, 1, TimezoneType).(*Timezone)
	l.PushString(tz.Name)
	return 1
}

// offsetSuffix renders the offset as ±HH:MM[:SS], dropping the sub-second
// part, which has no ISO rendering.
func (tz *Timezone) offsetSuffix() string {
	total := tz.Offset.Days*86400 + tz.Offset.Seconds
	sign := "+"
	if total < 0 {
		sign = "-"
		total = -total
	}
	if total%60 != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, total/3600, total/60%60, total%60)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, total/3600, total/60%60)
}
