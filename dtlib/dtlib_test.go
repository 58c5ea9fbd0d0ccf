package dtlib

import (
	"testing"

	"github.com/Shopify/go-lua"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *lua.State {
	t.Helper()
	l := lua.NewState()
	lua.OpenLibraries(l)
	require.NoError(t, Open(l))
	return l
}

func evalInt(t *testing.T, l *lua.State, code string) int {
	t.Helper()
	require.NoError(t, lua.DoString(l, "_ = "+code))
	l.Global("_")
	n, ok := l.ToInteger(-1)
	require.True(t, ok, code)
	l.Pop(1)
	return n
}

func evalNumber(t *testing.T, l *lua.State, code string) float64 {
	t.Helper()
	require.NoError(t, lua.DoString(l, "_ = "+code))
	l.Global("_")
	n, ok := l.ToNumber(-1)
	require.True(t, ok, code)
	l.Pop(1)
	return n
}

func evalString(t *testing.T, l *lua.State, code string) string {
	t.Helper()
	require.NoError(t, lua.DoString(l, "_ = "+code))
	l.Global("_")
	s, ok := l.ToString(-1)
	require.True(t, ok, code)
	l.Pop(1)
	return s
}

func evalBool(t *testing.T, l *lua.State, code string) bool {
	t.Helper()
	require.NoError(t, lua.DoString(l, "_ = "+code))
	l.Global("_")
	b := l.ToBoolean(-1)
	l.Pop(1)
	return b
}

func TestDeltaNormalization(t *testing.T) {
	l := newTestState(t)
	tests := []struct {
		args                 string
		days, seconds, micro int
	}{
		{"0, 0, 0", 0, 0, 0},
		{"1, 2, 3", 1, 2, 3},
		{"0, 86400, 0", 1, 0, 0},
		{"0, 0, 1000000", 0, 1, 0},
		{"0, -1, 0", -1, 86399, 0},
		{"2, -86400, 0", 1, 0, 0},
		{"-1, 1, -10", -1, 0, 999990},
		{"0, 0, -1", -1, 86399, 999999},
	}
	for _, tt := range tests {
		d := "datetime.timedelta(" + tt.args + ")"
		assert.Equal(t, tt.days, evalInt(t, l, d+".days"), tt.args)
		assert.Equal(t, tt.seconds, evalInt(t, l, d+".seconds"), tt.args)
		assert.Equal(t, tt.micro, evalInt(t, l, d+".microseconds"), tt.args)
	}
}

func TestDeltaBounds(t *testing.T) {
	l := newTestState(t)

	assert.Equal(t, MaxDeltaDays, evalInt(t, l, "datetime.timedelta(999999999).days"))
	assert.Equal(t, -MaxDeltaDays, evalInt(t, l, "datetime.timedelta(-999999999).days"))
	assert.Equal(t, MaxDeltaDays,
		evalInt(t, l, "datetime.timedelta(999999999, 86399, 999999).days"))

	for _, code := range []string{
		"datetime.timedelta(1000000000)",
		"datetime.timedelta(-1000000000)",
		"datetime.timedelta(999999999, 86400, 0)",
	} {
		err := lua.DoString(l, "return "+code)
		require.Error(t, err, code)
		assert.Contains(t, err.Error(), "magnitude", code)
	}
}

func TestDeltaTotalSeconds(t *testing.T) {
	l := newTestState(t)
	assert.Equal(t, 86401.5, evalNumber(t, l, "datetime.timedelta(1, 1, 500000):total_seconds()"))
	assert.Equal(t, -0.5, evalNumber(t, l, "datetime.timedelta(0, 0, -500000):total_seconds()"))
}

func TestDeltaEqualityAndString(t *testing.T) {
	l := newTestState(t)
	assert.True(t, evalBool(t, l, "datetime.timedelta(0, 86400, 0) == datetime.timedelta(1, 0, 0)"))
	assert.False(t, evalBool(t, l, "datetime.timedelta(1) == datetime.timedelta(2)"))
	assert.Equal(t, "datetime.timedelta(1, 2, 3)", evalString(t, l, "tostring(datetime.timedelta(1, 2, 3))"))
}

func TestDateValidation(t *testing.T) {
	l := newTestState(t)

	assert.Equal(t, 29, evalInt(t, l, "datetime.date(2012, 2, 29).day"))

	tests := []struct {
		code string
		msg  string
	}{
		{"datetime.date(2013, 2, 29)", "day 29 out of range"},
		{"datetime.date(2020, 13, 1)", "month 13 out of range"},
		{"datetime.date(2020, 0, 1)", "month 0 out of range"},
		{"datetime.date(0, 1, 1)", "year 0 is out of range"},
		{"datetime.date(10000, 1, 1)", "year 10000 is out of range"},
		{"datetime.date(2020, 4, 31)", "day 31 out of range"},
	}
	for _, tt := range tests {
		err := lua.DoString(l, "return "+tt.code)
		require.Error(t, err, tt.code)
		assert.Contains(t, err.Error(), tt.msg, tt.code)
	}
}

func TestDateFieldsAndISOFormat(t *testing.T) {
	l := newTestState(t)
	assert.Equal(t, 2020, evalInt(t, l, "datetime.date(2020, 1, 2).year"))
	assert.Equal(t, "2020-01-02", evalString(t, l, "datetime.date(2020, 1, 2):isoformat()"))
	assert.True(t, evalBool(t, l, "datetime.date(2020, 1, 2) == datetime.date(2020, 1, 2)"))
}

func TestTimeValidation(t *testing.T) {
	l := newTestState(t)

	assert.Equal(t, "00:00:00", evalString(t, l, "tostring(datetime.time())"))
	assert.Equal(t, "23:59:59.999999", evalString(t, l, "tostring(datetime.time(23, 59, 59, 999999))"))

	tests := []struct {
		code string
		msg  string
	}{
		{"datetime.time(24)", "hour 24"},
		{"datetime.time(0, 60)", "minute 60"},
		{"datetime.time(0, 0, 60)", "second 60"},
		{"datetime.time(0, 0, 0, 1000000)", "microsecond 1000000"},
		{"datetime.time(-1)", "hour -1"},
	}
	for _, tt := range tests {
		err := lua.DoString(l, "return "+tt.code)
		require.Error(t, err, tt.code)
		assert.Contains(t, err.Error(), tt.msg, tt.code)
	}
}

func TestDateTimeFields(t *testing.T) {
	l := newTestState(t)
	require.NoError(t, lua.DoString(l, "dt = datetime.datetime(2020, 1, 2, 3, 4, 5, 6)"))

	assert.Equal(t, 2020, evalInt(t, l, "dt.year"))
	assert.Equal(t, 5, evalInt(t, l, "dt.second"))
	assert.Equal(t, 6, evalInt(t, l, "dt.microsecond"))
	assert.True(t, evalBool(t, l, "dt.tzinfo == nil"))
	assert.True(t, evalBool(t, l, "dt:date() == datetime.date(2020, 1, 2)"))
	assert.True(t, evalBool(t, l, "dt:time() == datetime.time(3, 4, 5, 6)"))
	assert.Equal(t, "2020-01-02T03:04:05.000006", evalString(t, l, "dt:isoformat()"))
}

func TestDateTimeWithTimezone(t *testing.T) {
	l := newTestState(t)
	require.NoError(t, lua.DoString(l, `
		tz = datetime.timezone(datetime.timedelta(0, 3600, 0))
		dt = datetime.datetime(2020, 1, 2, 3, 4, 5, 0, tz)
	`))

	assert.Equal(t, 3600.0, evalNumber(t, l, "dt.tzinfo:utcoffset(nil):total_seconds()"))
	assert.Equal(t, "2020-01-02T03:04:05+01:00", evalString(t, l, "dt:isoformat()"))
	assert.True(t, evalBool(t, l, "dt ~= datetime.datetime(2020, 1, 2, 3, 4, 5, 0)"))
}

func TestTimezoneBounds(t *testing.T) {
	l := newTestState(t)

	for _, code := range []string{
		"datetime.timezone(datetime.timedelta(1, 0, 0))",
		"datetime.timezone(datetime.timedelta(-1, 0, 0))",
		"datetime.timezone(datetime.timedelta(2))",
	} {
		err := lua.DoString(l, "return "+code)
		require.Error(t, err, code)
		assert.Contains(t, err.Error(), "between", code)
	}

	// One microsecond inside either bound is fine.
	require.NoError(t, lua.DoString(l, "return datetime.timezone(datetime.timedelta(0, 86399, 999999))"))
	require.NoError(t, lua.DoString(l, "return datetime.timezone(datetime.timedelta(0, -86399, -999999))"))
}

func TestTimezoneNames(t *testing.T) {
	l := newTestState(t)
	assert.Equal(t, "UTC+01:00",
		evalString(t, l, "datetime.timezone(datetime.timedelta(0, 3600, 0)):tzname(nil)"))
	assert.Equal(t, "UTC-05:30",
		evalString(t, l, "datetime.timezone(datetime.timedelta(0, -19800, 0)):tzname(nil)"))
	assert.Equal(t, "zulu",
		evalString(t, l, `datetime.timezone(datetime.timedelta(0, 0, 0), "zulu"):tzname(nil)`))
}

func TestUTCConstant(t *testing.T) {
	l := newTestState(t)
	assert.Equal(t, 0.0, evalNumber(t, l, "datetime.utc:utcoffset(nil):total_seconds()"))
	assert.Equal(t, "UTC", evalString(t, l, "tostring(datetime.utc)"))
	assert.Equal(t, "UTC", evalString(t, l, "datetime.utc:tzname(nil)"))
}

func TestPrelude(t *testing.T) {
	l := newTestState(t)
	assert.Equal(t, MinYear, evalInt(t, l, "datetime.MINYEAR"))
	assert.Equal(t, MaxYear, evalInt(t, l, "datetime.MAXYEAR"))
	assert.Equal(t, "function", evalString(t, l, "type(warn)"))
}
