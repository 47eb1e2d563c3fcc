// Package timeval provides a microsecond-resolution time value —
// whole seconds plus a sub-second microsecond field — with the
// arithmetic, comparison, and formatting operations needed to work
// with instants and elapsed intervals without juggling the two
// fields by hand.
//
// [Time] is a plain value: copy it freely, compare it with ==, use
// it as a map key. All arithmetic returns new values and keeps the
// microsecond field normalized into [0, 1000000), carrying overflow
// into (or borrowing from) the seconds field.
//
// The arithmetic is written to avoid overflow-prone intermediates
// rather than to be fast. Keep that in mind in hot paths.
//
// The only operations that touch the host are the clock mutators
// (SetNow, SetFuture, SetPast) and the calendar accessors; both
// capabilities are injectable so tests can run against a fixed
// clock and location. See [Clock], [SetClock], and [SetLocation].
package timeval

import "time"

// MicrosPerSecond is the size of the microsecond field's normalized
// range. The microsecond field of a normalized Time is always in
// [0, MicrosPerSecond).
const MicrosPerSecond = 1_000_000

// Time is an absolute or relative instant with microsecond
// resolution, stored as seconds since the Unix epoch (or an
// arbitrary offset, for relative values) plus microseconds.
//
// The zero value is 0 seconds, 0 microseconds, and is ready to use.
type Time struct {
	sec  int64
	usec int64
}

// New returns a Time from an explicit seconds and microseconds pair.
//
// The microsecond argument is not range-checked; a caller-supplied
// value outside [0, MicrosPerSecond) is carried as-is and corrected
// the first time arithmetic normalizes the value. Pass 0 when only
// whole seconds are known.
func New(sec, usec int64) Time {
	return Time{sec: sec, usec: usec}
}

// FromMicros returns the Time representing a raw microsecond count:
// us/1000000 seconds and us%1000000 microseconds.
func FromMicros(us uint64) Time {
	return Time{
		sec:  int64(us / MicrosPerSecond),
		usec: int64(us % MicrosPerSecond),
	}
}

// FromGoTime converts a time.Time to a Time, truncating to
// microsecond resolution.
func FromGoTime(t time.Time) Time {
	return Time{
		sec:  t.Unix(),
		usec: int64(t.Nanosecond() / 1000),
	}
}

// GoTime converts t to a time.Time (UTC).
func (t Time) GoTime() time.Time {
	return time.Unix(t.sec, t.usec*1000).UTC()
}

// Seconds returns the whole-seconds field.
func (t Time) Seconds() int64 { return t.sec }

// Millis returns the sub-second field in milliseconds.
func (t Time) Millis() int64 { return t.usec / 1000 }

// Micros returns the sub-second microsecond field.
func (t Time) Micros() int64 { return t.usec }

// TotalMicros returns the value flattened to a single microsecond
// count, seconds*1000000 + microseconds. This scalar is the
// canonical ordering key used by all comparisons.
func (t Time) TotalMicros() int64 {
	return t.sec*MicrosPerSecond + t.usec
}

// local breaks the seconds field down in the package location.
// The breakdown is computed on every call, never cached.
func (t Time) local() time.Time {
	return time.Unix(t.sec, 0).In(location)
}

// Hour returns the hour of the day, 0 through 23, in the package
// location.
func (t Time) Hour() int { return t.local().Hour() }

// Minute returns the minute of the hour, 0 through 59.
func (t Time) Minute() int { return t.local().Minute() }

// Second returns the second of the minute, 0 through 59.
func (t Time) Second() int { return t.local().Second() }

// Day returns the day of the month, 1 through 31.
func (t Time) Day() int { return t.local().Day() }

// Month returns the month as a 0-based index, January = 0. This is
// the struct tm convention and is kept deliberately: callers who
// want Go's 1-based time.Month should go through GoTime.
func (t Time) Month() int { return int(t.local().Month()) - 1 }

// Year returns the year as an offset from 1900 (struct tm
// convention, kept deliberately; see Month).
func (t Time) Year() int { return t.local().Year() - 1900 }
