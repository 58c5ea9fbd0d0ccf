package civil

import "fmt"

// UtcOffset is a fixed offset from UTC in whole seconds, strictly between
// -24h and +24h. The zero value is UTC itself.
type UtcOffset struct {
	seconds int
}

// OffsetFromSeconds validates and wraps a whole-second UTC offset.
func OffsetFromSeconds(seconds int) (UtcOffset, error) {
	if seconds <= -86400 || seconds >= 86400 {
		return UtcOffset{}, fmt.Errorf("offset of %d seconds out of range", seconds)
	}
	return UtcOffset{seconds: seconds}, nil
}

// Seconds returns the offset east of UTC in seconds.
func (o UtcOffset) Seconds() int {
	return o.seconds
}

func (o UtcOffset) String() string {
	s := o.seconds
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	if s%60 != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, s/3600, s/60%60, s%60)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, s/3600, s/60%60)
}
