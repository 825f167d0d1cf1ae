package osc

import (
	"fmt"
	"math"
	"time"
)

const (
	// MinValue is the minimum value of an OSC Time Tag.
	MinValue = uint64(1)

	// secondsFrom1900To1970 is the offset between the NTP and Unix epochs.
	secondsFrom1900To1970 = 2208988800

	fractionScale = 1 << 32
)

// Timetag represents an OSC Time Tag.
// An OSC Time Tag is defined as follows:
// Time tags are represented by a 64 bit fixed point number. The first 32 bits
// specify the number of seconds since the epoch, and the last 32 bits specify
// fractional parts of a second to a precision of about 200 picoseconds.
//
// The fixed point value is the only wire-exact form. Seconds and
// NewTimetagFromSeconds expose it as floating point seconds without assuming
// an epoch; Time and NewTimetagFromTime use the NTP epoch (January 1, 1900).
type Timetag uint64

// NewTimetag returns a time tag for the current time.
func NewTimetag() Timetag {
	return NewTimetagFromTime(time.Now())
}

// NewImmediateTimetag returns the special time tag meaning "immediately".
func NewImmediateTimetag() Timetag {
	return Timetag(MinValue)
}

// NewTimetagFromTime returns a new OSC time tag object from a time.Time.
func NewTimetagFromTime(timeStamp time.Time) Timetag {
	return Timetag(timeToTimetag(timeStamp))
}

// NewTimetagFromSeconds returns the time tag closest to the given number of
// seconds. Values outside the representable range are clamped.
func NewTimetagFromSeconds(seconds float64) Timetag {
	switch {
	case math.IsNaN(seconds) || seconds <= 0:
		return 0
	case seconds >= math.MaxUint32+1:
		return Timetag(math.MaxUint64)
	}
	return Timetag(math.Ldexp(seconds, 32))
}

// Seconds returns the time tag as floating point seconds since the epoch.
func (t Timetag) Seconds() float64 {
	return math.Ldexp(float64(t), -32)
}

// Time returns the time.
func (t Timetag) Time() time.Time {
	return timetagToTime(t)
}

// FractionalSecond returns the last 32 bits of the OSC time tag. Specifies the
// fractional part of a second.
func (t Timetag) FractionalSecond() uint32 {
	return uint32(t)
}

// SecondsSinceEpoch returns the first 32 bits (the number of seconds since the
// epoch) from the OSC time tag.
func (t Timetag) SecondsSinceEpoch() uint32 {
	return uint32(t >> 32)
}

// TimeTag returns the time tag value
func (t Timetag) TimeTag() uint64 {
	return uint64(t)
}

// MarshalBinary converts the OSC time tag to a byte array.
func (t Timetag) MarshalBinary() ([]byte, error) {
	return appendTimetag(make([]byte, 0, bit64Size), t), nil
}

// UnmarshalBinary reads an 8 byte OSC time tag.
func (t *Timetag) UnmarshalBinary(data []byte) error {
	tt, rest, err := parseTimetag(data)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return fmt.Errorf("UnmarshalBinary: %w: %d trailing bytes", ErrMalformed, len(rest))
	}
	*t = tt
	return nil
}

// SetTime sets the value of the OSC time tag.
func (t *Timetag) SetTime(time time.Time) {
	*t = Timetag(timeToTimetag(time))
}

// ExpiresIn calculates the number of seconds until the current time is the
// same as the value of the time tag. It returns zero if the value of the
// time tag is in the past.
func (t Timetag) ExpiresIn() time.Duration {
	if t <= 1 {
		return 0
	}

	seconds := time.Until(timetagToTime(t))
	if seconds <= 0 {
		return 0
	}

	return seconds
}

// timeToTimetag converts the given time to an OSC time tag.
//
// The time tag value consisting of 63 zero bits followed by a one in the least
// significant bit is a special case meaning "immediately."
func timeToTimetag(t time.Time) (timetag uint64) {
	timetag = uint64(secondsFrom1900To1970+t.Unix()) << 32
	return timetag + uint64(t.Nanosecond())*fractionScale/uint64(time.Second)
}

// timetagToTime converts the given timetag to a time object.
func timetagToTime(timetag Timetag) (t time.Time) {
	nsec := (uint64(timetag.FractionalSecond())*uint64(time.Second) + fractionScale/2) / fractionScale
	return time.Unix(int64(timetag.SecondsSinceEpoch())-secondsFrom1900To1970, int64(nsec))
}
