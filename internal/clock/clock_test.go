package clock_test

import (
	"testing"
	"time"

	"github.com/AndrewDonelson/tape/internal/clock"
)

func TestRealNow(t *testing.T) {
	before := time.Now()
	got := clock.Real{}.Now()
	if got.Before(before.Add(-time.Second)) {
		t.Fatalf("Real.Now too far in the past: %v", got)
	}
}

func TestMockAdvance(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := clock.NewMock(base)
	if !m.Now().Equal(base) {
		t.Fatalf("expected %v, got %v", base, m.Now())
	}
	m.Advance(90 * time.Second)
	if !m.Now().Equal(base.Add(90 * time.Second)) {
		t.Fatalf("Advance did not move the clock")
	}
	m.Set(base)
	if !m.Now().Equal(base) {
		t.Fatalf("Set did not reset the clock")
	}
}

func TestMockZeroDefault(t *testing.T) {
	m := clock.NewMock(time.Time{})
	if m.Now().IsZero() {
		t.Fatal("zero time should be replaced with a fixed default")
	}
}
