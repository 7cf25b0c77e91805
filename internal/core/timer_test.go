package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstTick(t *testing.T) {
	fs := NewFixedStep(60)
	if fs.Pending() < 1 {
		t.Fatal("a fresh timer must have its first tick pending")
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(1000)
	fs.Pending() // consume the initial tick and set the baseline

	time.Sleep(5 * time.Millisecond)
	n := fs.Pending()
	if n < 1 {
		t.Fatalf("pending = %d after 5ms at 1000 TPS, want at least 1", n)
	}
	// Immediately asking again yields nothing new.
	if again := fs.Pending(); again > 1 {
		t.Fatalf("pending = %d immediately after consuming, want 0 or 1", again)
	}
}

func TestFixedStepBadTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, want the 60 TPS default", fs.step)
	}
	fs.SetTPS(-5)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v after SetTPS(-5), want the 60 TPS default", fs.step)
	}
}
