package core

import (
	"testing"
	"time"
)

func TestCoarseNow(t *testing.T) {
	StartCoarseClock()
	// Allow the ticker to fire at least once
	time.Sleep(2 * time.Millisecond)

	got := CoarseNow()
	now := time.Now()

	diff := now.Sub(got)
	if diff < 0 {
		diff = -diff
	}

	// The cached time should be within 5ms of real time
	if diff > 5*time.Millisecond {
		t.Errorf("CoarseNow() drifted %v from time.Now()", diff)
	}
}

func TestStartCoarseClockIdempotent(t *testing.T) {
	StartCoarseClock()
	StartCoarseClock()
	StartCoarseClock()

	got := CoarseNow()
	if got.IsZero() {
		t.Error("CoarseNow() returned zero time after multiple StartCoarseClock calls")
	}
}

func TestCoarseClock(t *testing.T) {
	if CoarseClock().Now().IsZero() {
		t.Error("CoarseClock().Now() returned zero time")
	}
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	c := ClockFunc(func() time.Time { return fixed })
	if !c.Now().Equal(fixed) {
		t.Errorf("ClockFunc.Now() = %v, want %v", c.Now(), fixed)
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := time.Date(2024, 5, 1, 12, 30, 15, 123456789, loc)

	got := FormatTimestamp(ts)
	want := "2024-05-01T11:30:15.123Z"
	if got != want {
		t.Errorf("FormatTimestamp() = %q, want %q", got, want)
	}
}
