package timeval

// Add returns t+u with the microsecond sum carried into seconds when
// it reaches MicrosPerSecond. This is the timeradd convention:
// signed seconds absorb the carry, so a negative result has a
// negative seconds field and a microsecond field still in
// [0, MicrosPerSecond).
func (t Time) Add(u Time) Time {
	sec := t.sec + u.sec
	usec := t.usec + u.usec
	if usec >= MicrosPerSecond {
		sec++
		usec -= MicrosPerSecond
	}
	return Time{sec: sec, usec: usec}
}

// Sub returns t-u with a borrow from seconds when the microsecond
// difference goes negative (the timersub convention; see Add for how
// negative results are represented).
func (t Time) Sub(u Time) Time {
	sec := t.sec - u.sec
	usec := t.usec - u.usec
	if usec < 0 {
		sec--
		usec += MicrosPerSecond
	}
	return Time{sec: sec, usec: usec}
}

// AddMicros returns t advanced by a raw microsecond count.
// Equivalent to t.Add(FromMicros(us)).
func (t Time) AddMicros(us uint64) Time {
	return t.Add(FromMicros(us))
}

// SubMicros returns t rewound by a raw microsecond count.
// Equivalent to t.Sub(FromMicros(us)).
func (t Time) SubMicros(us uint64) Time {
	return t.Sub(FromMicros(us))
}

// Mul returns t scaled by a positive integer multiplier. The
// microsecond product is normalized by div/mod, so a product landing
// exactly on MicrosPerSecond carries cleanly into seconds. A
// non-positive multiplier is a caller error with undefined results.
func (t Time) Mul(n int64) Time {
	us := t.usec * n
	return Time{
		sec:  t.sec*n + us/MicrosPerSecond,
		usec: us % MicrosPerSecond,
	}
}

// Div returns t divided by a positive integer denominator,
// truncating. The sub-second remainder of the microsecond division
// is discarded, so Div(New(0, 100), 1000) is the zero Time.
//
// A zero denominator panics with the runtime's division-by-zero; a
// negative denominator is a caller error with undefined results.
func (t Time) Div(n int64) Time {
	if t.sec >= n {
		sec := t.sec / n
		rem := t.sec % n
		us := rem*MicrosPerSecond + t.usec
		return Time{sec: sec, usec: us / n}
	}
	us := t.sec*MicrosPerSecond + t.usec
	return Time{sec: 0, usec: us / n}
}

// Equal reports whether t and u denote the same instant. Equality is
// exact, no tolerance.
func (t Time) Equal(u Time) bool {
	return t.TotalMicros() == u.TotalMicros()
}

// Before reports whether t is earlier than u.
func (t Time) Before(u Time) bool {
	return t.TotalMicros() < u.TotalMicros()
}

// After reports whether t is later than u.
func (t Time) After(u Time) bool {
	return t.TotalMicros() > u.TotalMicros()
}

// Compare orders t against u: -1 if t is earlier, 0 if equal, +1 if
// later. The order is total and consistent with TotalMicros.
func (t Time) Compare(u Time) int {
	switch a, b := t.TotalMicros(), u.TotalMicros(); {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}
