package timevaltest_test

import (
	"testing"

	"github.com/blockberries/timeval"
	timevaltest "github.com/blockberries/timeval/testing"
)

func TestClockFixed(t *testing.T) {
	clk := timevaltest.NewClock(1700000000, 42)
	for i := 0; i < 3; i++ {
		sec, usec := clk.Now()
		if sec != 1700000000 || usec != 42 {
			t.Fatalf("read %d: got (%d, %d), want (1700000000, 42)", i, sec, usec)
		}
	}
	if clk.NowCalls.Load() != 3 {
		t.Fatalf("NowCalls: got %d, want 3", clk.NowCalls.Load())
	}
}

func TestClockAdvanceNormalizes(t *testing.T) {
	clk := timevaltest.NewClock(0, 999999)
	clk.Advance(timeval.New(0, 2))
	sec, usec := clk.Now()
	if sec != 1 || usec != 1 {
		t.Fatalf("Advance: got (%d, %d), want (1, 1)", sec, usec)
	}
}
