package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresPerElapsedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, expected no step")
	}

	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step elapsed, expected no step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full step elapsed, expected a step")
	}
	if fs.Ticks() != 2 {
		t.Fatalf("Ticks() = %d, want 2", fs.Ticks())
	}
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("Step() = %v, want 1/60s", fs.Step())
	}
}
