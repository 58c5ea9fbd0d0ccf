package civil

import (
	"fmt"
	"time"
)

// DateTime is a calendar date combined with a clock time, with no offset
// or location attached.
type DateTime struct {
	Date Date
	Time TimeOfDay
}

// OffsetDateTime is a DateTime qualified with a fixed UTC offset.
type OffsetDateTime struct {
	DateTime DateTime
	Offset   UtcOffset
}

// OffsetDateTimeOf decomposes t into civil fields plus the fixed offset of
// t's location at that instant. Sub-second precision is kept in full.
func OffsetDateTimeOf(t time.Time) OffsetDateTime {
	_, secs := t.Zone()
	// The zone offset of a concrete instant is always in range.
	off, _ := OffsetFromSeconds(secs)
	return OffsetDateTime{
		DateTime: DateTime{Date: DateOf(t), Time: TimeOfDayOf(t)},
		Offset:   off,
	}
}

// GoTime reassembles the instant as a time.Time in a fixed-offset location.
// A leap-second Nanosecond value (>= 1e9) spills into the following second,
// since time.Time has no leap-second representation.
func (dt OffsetDateTime) GoTime() time.Time {
	d, t := dt.DateTime.Date, dt.DateTime.Time
	loc := time.FixedZone("", dt.Offset.Seconds())
	return time.Date(d.Year, d.Month, d.Day, t.Hour, t.Minute, t.Second, t.Nanosecond, loc)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.Date, dt.Time)
}

func (dt OffsetDateTime) String() string {
	return fmt.Sprintf("%s%s", dt.DateTime, dt.Offset)
}
