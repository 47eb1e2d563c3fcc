package timeval_test

import (
	"testing"

	"github.com/blockberries/timeval"
)

// roundTrip marshals tv and unmarshals the bytes into a fresh Time.
func roundTrip(t *testing.T, tv timeval.Time) timeval.Time {
	t.Helper()
	data, err := tv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	var out timeval.Time
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary failed: %v", err)
	}
	return out
}

func TestWireRoundTrip(t *testing.T) {
	for _, tv := range []timeval.Time{
		{},
		timeval.New(1700000000, 123456),
		timeval.New(-3, 500000),
	} {
		got := roundTrip(t, tv)
		if !got.Equal(tv) {
			t.Errorf("round trip of %v: got %v", tv, got)
		}
		if got.Seconds() != tv.Seconds() || got.Micros() != tv.Micros() {
			t.Errorf("round trip of %v: fields (%d, %d)", tv, got.Seconds(), got.Micros())
		}
	}
}

func TestWireDeterministic(t *testing.T) {
	tv := timeval.New(1700000000, 42)
	a, err := tv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	b, err := tv.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("equal values must encode to equal bytes")
	}
}
