// Package dtlib implements the datetime library for an embedded Lua state:
// date, time, datetime, timedelta and timezone objects with normalized
// integer fields, calendar validation, and fixed-offset timezones. The
// object model stays small (proleptic Gregorian calendar, microsecond
// resolution, years 1 through 9999, no zone database) so that values map
// field-for-field across the Go/Lua boundary.
package dtlib

import (
	_ "embed"
	"fmt"

	"github.com/Shopify/go-lua"
)

// LibraryName is the name the library is registered under, both in
// package.loaded and as a global.
const LibraryName = "datetime"

// Metatable names of the library's object kinds, registered in the Lua
// registry by Open.
const (
	DeltaType    = "datetime.timedelta"
	DateType     = "datetime.date"
	TimeType     = "datetime.time"
	DateTimeType = "datetime.datetime"
	TimezoneType = "datetime.timezone"
)

// Calendar year bounds of the object model.
const (
	MinYear = 1
	MaxYear = 9999
)

//go:embed prelude.lua
var prelude string

// Open registers the datetime library into l, exposes it as the global
// "datetime", and runs the Lua prelude. Safe to call once per state.
func Open(l *lua.State) error {
	lua.Require(l, LibraryName, luaOpen, true)
	l.Pop(1)
	if err := lua.DoString(l, prelude); err != nil {
		return fmt.Errorf("datetime prelude: %w", err)
	}
	return nil
}

func luaOpen(l *lua.State) int {
	lua.NewLibrary(l, []lua.RegistryFunction{
		{Name: "timedelta", Function: newDelta},
		{Name: "date", Function: newDate},
		{Name: "time", Function: newTime},
		{Name: "datetime", Function: newDateTime},
		{Name: "timezone", Function: newTimezone},
	})

	registerType(l, DeltaType, deltaIndex, deltaEq, deltaString)
	registerType(l, DateType, dateIndex, dateEq, dateString)
	registerType(l, TimeType, timeIndex, timeEq, timeString)
	registerType(l, DateTimeType, dateTimeIndex, dateTimeEq, dateTimeString)
	registerType(l, TimezoneType, timezoneIndex, timezoneEq, timezoneString)

	pushTimezone(l, &Timezone{Name: "UTC"})
	l.SetField(-2, "utc")

	return 1
}

// registerType creates a named metatable wiring the per-kind metamethods.
// Field and method access goes through __index so Lua code and the bridge
// read objects the same way.
func registerType(l *lua.State, name string, index, eq, str lua.Function) {
	lua.NewMetaTable(l, name)
	l.PushGoFunction(index)
	l.SetField(-2, "__index")
	l.PushGoFunction(eq)
	l.SetField(-2, "__eq")
	l.PushGoFunction(str)
	l.SetField(-2, "__tostring")
	l.Pop(1)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
