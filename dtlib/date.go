package dtlib

import (
	"fmt"
	"time"

	"github.com/Shopify/go-lua"

	"github.com/luadt/luadt/civil"
)

// Date is the payload of a datetime.date userdata. Fields are always a
// valid calendar date with Year in [MinYear, MaxYear].
type Date struct {
	Year  int
	Month int
	Day   int
}

// datetime.date(year, month, day)
func newDate(l *lua.State) int {
	year := lua.CheckInteger(l, 1)
	month := lua.CheckInteger(l, 2)
	day := lua.CheckInteger(l, 3)
	checkDateArgs(l, year, month, day)
	pushDate(l, &Date{Year: year, Month: month, Day: day})
	return 1
}

func checkDateArgs(l *lua.State, year, month, day int) {
	if year < MinYear || year > MaxYear {
		lua.Errorf(l, "date: year %d is out of range", year)
		panic("unreachable")
	}
	if _, err := civil.NewDate(year, time.Month(month), day); err != nil {
		lua.Errorf(l, "date: %s", err.Error())
		panic("unreachable")
	}
}

func pushDate(l *lua.State, d *Date) {
	l.PushUserData(d)
	lua.SetMetaTableNamed(l, DateType)
}

func dateIndex(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DateType).(*Date)
	switch key := lua.CheckString(l, 2); key {
	case "year":
		l.PushInteger(d.Year)
	case "month":
		l.PushInteger(d.Month)
	case "day":
		l.PushInteger(d.Day)
	case "isoformat":
		l.PushGoFunction(dateISOFormat)
	default:
		l.PushNil()
	}
	return 1
}

func dateISOFormat(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DateType).(*Date)
	l.PushString(d.String())
	return 1
}

func dateEq(l *lua.State) int {
	a := lua.CheckUserData(l, 1, DateType).(*Date)
	b := lua.CheckUserData(l, 2, DateType).(*Date)
	l.PushBoolean(*a == *b)
	return 1
}

func dateString(l *lua.State) int {
	d := lua.CheckUserData(l, 1, DateType).(*Date)
	l.PushString(d.String())
	return 1
}

func (d *Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
