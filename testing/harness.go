package timevaltest

import (
	"testing"
	"time"

	"github.com/blockberries/timeval"
)

// Install makes c the package clock for the remainder of the test
// and restores the previous clock on cleanup.
func Install(t testing.TB, c timeval.Clock) {
	t.Helper()
	prev := timeval.SetClock(c)
	t.Cleanup(func() { timeval.SetClock(prev) })
}

// InstallAt installs a fresh mock clock fixed at the given instant
// and returns it for later Set/Advance calls.
func InstallAt(t testing.TB, sec, usec int64) *Clock {
	t.Helper()
	c := NewClock(sec, usec)
	Install(t, c)
	return c
}

// InstallLocation makes loc the location used by the calendar
// accessors for the remainder of the test and restores the previous
// one on cleanup.
func InstallLocation(t testing.TB, loc *time.Location) {
	t.Helper()
	prev := timeval.SetLocation(loc)
	t.Cleanup(func() { timeval.SetLocation(prev) })
}
