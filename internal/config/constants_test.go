package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if FrameInterval < TickInterval {
		t.Fatalf("FrameInterval should not be shorter than TickInterval")
	}
	if DefaultDisplayText != "00:00:00:000" {
		t.Fatalf("unexpected default display text %q", DefaultDisplayText)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if EnvPrefix == "" {
		t.Fatalf("EnvPrefix should not be empty")
	}
	if MinSweepWidth > SweepWidth {
		t.Fatalf("MinSweepWidth must not exceed SweepWidth")
	}
}
