package luadt

import (
	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/dtlib"
)

var hostKinds = []string{
	dtlib.DeltaType,
	dtlib.DateType,
	dtlib.TimeType,
	dtlib.DateTimeType,
	dtlib.TimezoneType,
}

// checkKind returns the payload of the userdata at index when its
// metatable matches meta, or a TypeError naming what was found instead.
func checkKind(l *lua.State, index int, meta string) (interface{}, error) {
	if v := lua.TestUserData(l, index, meta); v != nil {
		return v, nil
	}
	return nil, &TypeError{Want: meta, Got: describe(l, index)}
}

// describe names the value at index for error messages: the datetime kind
// when it is one, the plain Lua type name otherwise.
func describe(l *lua.State, index int) string {
	for _, meta := range hostKinds {
		if lua.TestUserData(l, index, meta) != nil {
			return meta
		}
	}
	return lua.TypeNameOf(l, index)
}

// displayString renders the value at index through the host's tostring,
// honoring __tostring metamethods, with the type name as fallback.
func displayString(l *lua.State, index int) string {
	index = l.AbsIndex(index)
	top := l.Top()
	l.Global("tostring")
	l.PushValue(index)
	if err := l.ProtectedCall(1, 1, 0); err == nil {
		if s, ok := l.ToString(-1); ok {
			l.SetTop(top)
			return s
		}
	}
	l.SetTop(top)
	return lua.TypeNameOf(l, index)
}
