package dtlib

import (
	"github.com/Shopify/go-lua"
)

// DateTime is the payload of a datetime.datetime userdata. TZ is nil for a
// naive value; an attached timezone is always a fixed offset.
type DateTime struct {
	Date Date
	Time Time
	TZ   *Timezone
}

// datetime.datetime(year, month, day, hour, minute, second, microsecond [, tz])
func newDateTime(l *lua.State) int {
	year := lua.CheckInteger(l, 1)
	month := lua.CheckInteger(l, 2)
	day := lua.CheckInteger(l, 3)
	hour := lua.OptInteger(l, 4, 0)
	minute := lua.OptInteger(l, 5, 0)
	second := lua.OptInteger(l, 6, 0)
	micro := lua.OptInteger(l, 7, 0)

	checkDateArgs(l, year, month, day)
	checkTimeArgs(l, hour, minute, second, micro)

	var tz *Timezone
	if !l.IsNoneOrNil(8) {
		tz = lua.CheckUserData(l, 8, TimezoneType).(*Timezone)
	}

	pushDateTime(l, &DateTime{
		Date: Date{Year: year, Month: month, Day: day},
		Time: Time{Hour: hour, Minute: minute, Second: second, Microsecond: micro},
		TZ:   tz,
	})
	return 1
}

func pushDateTime(l *lua.State, dt *DateTime) {
	l.PushUserData(dt)
	lua.SetMetaTableNamed(l, DateTimeType)
}

func dateTimeIndex(l *lua.State) int {
	dt := lua.CheckUserData(l, 1, DateTimeType).(*DateTime)
	switch key := lua.CheckString(l, 2); key {
	case "year":
		l.PushInteger(dt.Date.Year)
	case "month":
		l.PushInteger(dt.Date.Month)
	case "day":
		l.PushInteger(dt.Date.Day)
	case "hour":
		l.PushInteger(dt.Time.Hour)
	case "minute":
		l.PushInteger(dt.Time.Minute)
	case "second":
		l.PushInteger(dt.Time.Second)
	case "microsecond":
		l.PushInteger(dt.Time.Microsecond)
	case "tzinfo":
		if dt.TZ == nil {
			l.PushNil()
		} else {
			pushTimezone(l, dt.TZ)
		}
	case "date":
		l.PushGoFunction(dateTimeDate)
	case "time":
		l.PushGoFunction(dateTimeTime)
	case "isoformat":
		l.PushGoFunction(dateTimeISOFormat)
	default:
		l.PushNil()
	}
	return 1
}

// dt:date() and dt:time() split off fresh component objects.
func dateTimeDate(l *lua.State) int {
	dt := lua.CheckUserData(l, 1, DateTimeType).(*DateTime)
	d := dt.Date
	pushDate(l, &d)
	return 1
}

func dateTimeTime(l *lua.State) int {
	dt := lua.CheckUserData(l, 1, DateTimeType).(*DateTime)
	t := dt.Time
	pushTime(l, &t)
	return 1
}

func dateTimeISOFormat(l *lua.State) int {
	dt := lua.CheckUserData(l, 1, DateTimeType).(*DateTime)
	l.PushString(dt.String())
	return 1
}

func dateTimeEq(l *lua.State) int {
	a := lua.CheckUserData(l, 1, DateTimeType).(*DateTime)
	b := lua.CheckUserData(l, 2, DateTimeType).(*DateTime)
	eq := a.Date == b.Date && a.Time == b.Time
	switch {
	case a.TZ == nil && b.TZ == nil:
	case a.TZ != nil && b.TZ != nil:
		eq = eq && a.TZ.Offset == b.TZ.Offset
	default:
		eq = false
	}
	l.PushBoolean(eq)
	return 1
}

func dateTimeString(l *lua.State) int {
	dt := lua.CheckUserData(l, 1, DateTimeType).(*DateTime)
	l.PushString(dt.String())
	return 1
}

func (dt *DateTime) String() string {
	s := dt.Date.String() + "T" + dt.Time.String()
	if dt.TZ != nil {
		s += dt.TZ.offsetSuffix()
	}
	return s
}
