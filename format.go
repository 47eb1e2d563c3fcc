package timeval

import "fmt"

// String renders t as "<seconds>.<microseconds>s" with the
// microsecond field zero-padded to six digits, e.g.
// "1700000000.000500s".
func (t Time) String() string {
	return fmt.Sprintf("%d.%06ds", t.sec, t.usec)
}

const (
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * 60
	secondsPerDay    = secondsPerHour * 24
)

// Duration renders a Time as an elapsed interval, "[Nd ]HH:MM:SS"
// with an optional six-digit microsecond suffix. It captures the
// Time's fields by value at construction, so mutating the source
// afterwards does not affect the rendering.
//
// Duration is a one-shot formatting view, not an arithmetic type;
// interval math stays on Time.
type Duration struct {
	sec        int64
	usec       int64
	showMicros bool
}

// NewDuration returns a Duration view of t. With showMicros set, the
// rendering carries sub-second precision.
func NewDuration(t Time, showMicros bool) Duration {
	return Duration{sec: t.sec, usec: t.usec, showMicros: showMicros}
}

// String renders the captured value. A day component appears only
// when the interval spans at least one whole day; hours, minutes,
// and seconds are always two digits.
//
//	NewDuration(New(3661, 0), false)      // "01:01:01"
//	NewDuration(New(90000, 0), false)     // "1d 01:00:00"
//	NewDuration(New(5, 250000), true)     // "00:00:05.250000"
func (d Duration) String() string {
	s := d.sec
	var days string
	if s/secondsPerDay > 0 {
		days = fmt.Sprintf("%dd ", s/secondsPerDay)
		s %= secondsPerDay
	}
	out := fmt.Sprintf("%s%02d:%02d:%02d",
		days, s/secondsPerHour, s%secondsPerHour/secondsPerMinute, s%secondsPerMinute)
	if d.showMicros {
		out += fmt.Sprintf(".%06d", d.usec)
	}
	return out
}
