package luadt

import (
	"errors"
	"fmt"
)

// TypeError reports a host value that is not an instance of the expected
// host kind.
type TypeError struct {
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Want, e.Got)
}

// RangeError reports a host value whose fields are well-typed but violate
// a domain constraint of the native target type.
type RangeError struct {
	Reason string
}

func (e *RangeError) Error() string {
	return e.Reason
}

// TzInfoError reports a host datetime whose tzinfo does not match the
// native target: present when converting to a naive value, or missing
// when converting to an offset-aware one.
type TzInfoError struct {
	WantTzInfo bool
}

func (e *TzInfoError) Error() string {
	if e.WantTzInfo {
		return "expected a datetime with non-nil tzinfo"
	}
	return "expected a datetime without tzinfo"
}

// NotFixedOffsetError reports a tzinfo that needs a concrete reference
// instant to compute its offset and therefore cannot be reduced to a
// fixed UTC offset.
type NotFixedOffsetError struct {
	Zone string
}

func (e *NotFixedOffsetError) Error() string {
	return fmt.Sprintf("%s is not a fixed offset timezone", e.Zone)
}

// AsTypeError unwraps err as a TypeError.
func AsTypeError(err error) (*TypeError, bool) {
	var te *TypeError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// AsRangeError unwraps err as a RangeError.
func AsRangeError(err error) (*RangeError, bool) {
	var re *RangeError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// AsTzInfoError unwraps err as a TzInfoError.
func AsTzInfoError(err error) (*TzInfoError, bool) {
	var tze *TzInfoError
	if errors.As(err, &tze) {
		return tze, true
	}
	return nil, false
}

// AsNotFixedOffsetError unwraps err as a NotFixedOffsetError.
func AsNotFixedOffsetError(err error) (*NotFixedOffsetError, bool) {
	var nfe *NotFixedOffsetError
	if errors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}
