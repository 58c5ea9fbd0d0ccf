package luadt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luadt/luadt/civil"
)

func TestDateRoundTrip(t *testing.T) {
	l := newTestState(t)
	tests := []struct {
		name string
		d    civil.Date
	}{
		{"leap day", civil.Date{Year: 2012, Month: time.February, Day: 29}},
		{"min", civil.Date{Year: 1, Month: time.January, Day: 1}},
		{"max", civil.Date{Year: 9999, Month: time.December, Day: 31}},
		{"plain", civil.Date{Year: 3000, Month: time.June, Day: 5}},
	}
	for _, tt := range tests {
		top := l.Top()
		require.NoError(t, PushDate(l, tt.d), tt.name)
		got, err := ToDate(l, -1)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.d, got, tt.name)
		l.SetTop(top)
	}
}

func TestPushDateOutOfRange(t *testing.T) {
	l := newTestState(t)
	tests := []struct {
		name string
		d    civil.Date
		msg  string
	}{
		{"year past max", civil.Date{Year: 10000, Month: time.January, Day: 1}, "year 10000"},
		{"year zero", civil.Date{Year: 0, Month: time.January, Day: 1}, "year 0"},
		{"not a leap year", civil.Date{Year: 2013, Month: time.February, Day: 29}, "day 29"},
	}
	for _, tt := range tests {
		top := l.Top()
		err := PushDate(l, tt.d)
		require.Error(t, err, tt.name)
		assert.Contains(t, err.Error(), tt.msg, tt.name)
		assert.Equal(t, top, l.Top(), tt.name)
	}
}

func TestDateExportFields(t *testing.T) {
	l := newTestState(t)
	require.NoError(t, PushDate(l, civil.Date{Year: 2024, Month: time.July, Day: 9}))
	l.SetGlobal("d")
	assert.Equal(t, 2024, evalInt(t, l, "d.year"))
	assert.Equal(t, 7, evalInt(t, l, "d.month"))
	assert.Equal(t, 9, evalInt(t, l, "d.day"))
}

func TestToDateWrongType(t *testing.T) {
	l := newTestState(t)
	l.PushNumber(20200101)
	_, err := ToDate(l, -1)
	te, ok := AsTypeError(err)
	require.True(t, ok)
	assert.Equal(t, "datetime.date", te.Want)
	assert.Equal(t, "number", te.Got)
}
