package luadt

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/dtlib"
)

// handlesKey is the registry slot caching the constructor handles of the
// host datetime types. Built once per state on the first conversion, so
// later conversions never re-resolve globals and are immune to scripts
// rebinding the datetime table.
const handlesKey = "luadt.handles"

var ctorNames = []string{"timedelta", "date", "time", "datetime", "timezone"}

// pushHandles leaves the handle table on top of the stack.
func pushHandles(l *lua.State) error {
	l.Field(lua.RegistryIndex, handlesKey)
	if l.IsTable(-1) {
		return nil
	}
	l.Pop(1)

	l.Global(dtlib.LibraryName)
	if !l.IsTable(-1) {
		l.Pop(1)
		return fmt.Errorf("datetime library not loaded in this state")
	}
	l.NewTable()
	for _, name := range ctorNames {
		l.Field(-2, name)
		if !l.IsFunction(-1) {
			l.Pop(3)
			return fmt.Errorf("datetime library has no constructor %q", name)
		}
		l.SetField(-2, name)
	}
	l.PushValue(-1)
	l.SetField(lua.RegistryIndex, handlesKey)
	l.Remove(-2)
	return nil
}

// pushConstructor pushes the named host constructor from the handle cache.
func pushConstructor(l *lua.State, name string) error {
	if err := pushHandles(l); err != nil {
		return err
	}
	l.Field(-1, name)
	l.Remove(-2)
	return nil
}
