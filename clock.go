package timeval

import "time"

// Clock supplies the current wall-clock time with microsecond
// precision. The package default reads the system clock; tests
// install a fixed clock via SetClock (the timevaltest package has
// one ready to use).
type Clock interface {
	// Now returns the current time as whole seconds since the Unix
	// epoch plus sub-second microseconds in [0, MicrosPerSecond).
	Now() (sec, usec int64)
}

// systemClock reads the host clock through time.Now.
type systemClock struct{}

func (systemClock) Now() (int64, int64) {
	t := time.Now()
	return t.Unix(), int64(t.Nanosecond() / 1000)
}

// clock is the package-level time source. A variable rather than a
// direct time.Now call so tests can substitute a deterministic
// clock.
var clock Clock = systemClock{}

// location is used by the calendar accessors to break seconds down
// into local calendar fields.
var location = time.Local

// SetClock installs c as the package clock and returns the previous
// one. Intended for test setup; not synchronized against concurrent
// readers.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// SetLocation installs loc as the location used by the calendar
// accessors and returns the previous one. Intended for test setup;
// not synchronized against concurrent readers.
func SetLocation(loc *time.Location) *time.Location {
	prev := location
	location = loc
	return prev
}

// SetNow overwrites t with the current clock reading and returns t
// for chaining.
func (t *Time) SetNow() *Time {
	t.sec, t.usec = clock.Now()
	return t
}

// SetFuture overwrites t with the current clock reading plus secs
// whole seconds. The microsecond field is the clock's, unchanged.
func (t *Time) SetFuture(secs int64) *Time {
	t.sec, t.usec = clock.Now()
	t.sec += secs
	return t
}

// SetPast overwrites t with the current clock reading minus secs
// whole seconds.
func (t *Time) SetPast(secs int64) *Time {
	t.sec, t.usec = clock.Now()
	t.sec -= secs
	return t
}

// Now returns the current clock reading as a Time.
func Now() Time {
	var t Time
	t.SetNow()
	return t
}

// Future returns the current clock reading advanced by secs whole
// seconds.
func Future(secs int64) Time {
	var t Time
	t.SetFuture(secs)
	return t
}

// Past returns the current clock reading rewound by secs whole
// seconds.
func Past(secs int64) Time {
	var t Time
	t.SetPast(secs)
	return t
}
