package luadt

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luadt/luadt/civil"
	"github.com/luadt/luadt/dtlib"
)

func TestDurationRoundTrip(t *testing.T) {
	l := newTestState(t)
	tests := []struct {
		name string
		d    civil.Duration
	}{
		{"zero", civil.Duration{}},
		{"one second", civil.Duration{Seconds: 1}},
		{"one microsecond", civil.NewDuration(0, 1000)},
		{"negative mixed", civil.NewDuration(-86399, -10_000)},
		{"max days", civil.DurationFromDays(dtlib.MaxDeltaDays)},
		{"min days", civil.DurationFromDays(-dtlib.MaxDeltaDays)},
		{"max delta", civil.NewDuration(86_399_999_999_999, 999_999_000)},
	}
	for _, tt := range tests {
		top := l.Top()
		require.NoError(t, PushDuration(l, tt.d), tt.name)
		got, err := ToDuration(l, -1)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.d, got, tt.name)
		l.SetTop(top)
	}
}

func TestDurationExportOutOfRange(t *testing.T) {
	l := newTestState(t)
	tests := []struct {
		name string
		d    civil.Duration
	}{
		{"past max days", civil.DurationFromDays(dtlib.MaxDeltaDays + 1)},
		{"past min days", civil.DurationFromDays(-dtlib.MaxDeltaDays - 1)},
		{"huge seconds", civil.Duration{Seconds: math.MaxInt64}},
		{"huge negative seconds", civil.Duration{Seconds: math.MinInt64 + 1}},
	}
	for _, tt := range tests {
		top := l.Top()
		err := PushDuration(l, tt.d)
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), "magnitude", tt.name)
		assert.Equal(t, top, l.Top(), tt.name)
	}
}

func TestDurationSubMicrosecondTruncation(t *testing.T) {
	l := newTestState(t)
	tests := []struct {
		name string
		in   civil.Duration
		want civil.Duration
	}{
		{"positive", civil.Duration{Nanoseconds: 1500}, civil.Duration{Nanoseconds: 1000}},
		{"negative", civil.Duration{Nanoseconds: -1500}, civil.Duration{Nanoseconds: -1000}},
		{"below one micro", civil.Duration{Nanoseconds: 999}, civil.Duration{}},
	}
	for _, tt := range tests {
		top := l.Top()
		require.NoError(t, PushDuration(l, tt.in), tt.name)
		got, err := ToDuration(l, -1)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
		l.SetTop(top)
	}
}

func TestDurationExportNormalizedFields(t *testing.T) {
	l := newTestState(t)
	// -1 day, +1 second, -10 microseconds.
	require.NoError(t, PushDuration(l, civil.NewDuration(-86399, -10_000)))
	l.SetGlobal("d")
	assert.Equal(t, -1, evalInt(t, l, "d.days"))
	assert.Equal(t, 0, evalInt(t, l, "d.seconds"))
	assert.Equal(t, 999990, evalInt(t, l, "d.microseconds"))
}

func TestToDurationWrongType(t *testing.T) {
	l := newTestState(t)

	l.PushString("soon")
	_, err := ToDuration(l, -1)
	te, ok := AsTypeError(err)
	require.True(t, ok)
	assert.Equal(t, "datetime.timedelta", te.Want)
	assert.Equal(t, "string", te.Got)
	l.Pop(1)

	require.NoError(t, PushDate(l, civil.Date{Year: 2020, Month: time.March, Day: 1}))
	_, err = ToDuration(l, -1)
	te, ok = AsTypeError(err)
	require.True(t, ok)
	assert.Equal(t, "datetime.date", te.Got)
	l.Pop(1)
}

func TestGoDurationRoundTrip(t *testing.T) {
	l := newTestState(t)
	for _, d := range []time.Duration{0, time.Microsecond, 90 * time.Minute, -time.Second, -36 * time.Hour} {
		top := l.Top()
		require.NoError(t, PushGoDuration(l, d))
		got, err := ToGoDuration(l, -1)
		require.NoError(t, err)
		assert.Equal(t, d, got)
		l.SetTop(top)
	}
}

func TestToGoDurationOutOfRange(t *testing.T) {
	l := newTestState(t)
	require.NoError(t, PushDuration(l, civil.DurationFromDays(dtlib.MaxDeltaDays)))
	_, err := ToGoDuration(l, -1)
	re, ok := AsRangeError(err)
	require.True(t, ok)
	assert.Contains(t, re.Reason, "time.Duration")
}
