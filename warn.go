package luadt

import (
	"fmt"
	"io"
	"os"

	"github.com/Shopify/go-lua"
)

const leapSecondWarning = "ignored leap second: the datetime object model does not support leap seconds"

// unraisableWriter receives warnings that could not be delivered through
// the host warning channel. Package-level so embedders and tests can
// redirect it.
var unraisableWriter io.Writer = os.Stderr

// warnTruncatedLeapSecond reports a collapsed leap second through the
// host's warn function. The conversion that triggered the warning has
// already succeeded, so a failing channel only downgrades the warning to
// the unraisable sink.
func warnTruncatedLeapSecond(l *lua.State) {
	top := l.Top()
	l.Global("warn")
	if !l.IsFunction(-1) {
		l.SetTop(top)
		writeUnraisable(nil)
		return
	}
	l.PushString(leapSecondWarning)
	if err := l.ProtectedCall(1, 0, 0); err != nil {
		l.SetTop(top)
		writeUnraisable(err)
	}
}

func writeUnraisable(err error) {
	if err != nil {
		fmt.Fprintf(unraisableWriter, "luadt: warning lost (%v): %s\n", err, leapSecondWarning)
		return
	}
	fmt.Fprintf(unraisableWriter, "luadt: no warn function: %s\n", leapSecondWarning)
}
