package streamadapter

import (
	"errors"
	"testing"
)

var errBoom = errors.New("boom")

func TestPowerHandle_ReleaseIsIdempotent(t *testing.T) {
	disableCalls := 0
	h, err := NewPowerHandle(
		func() error { return nil },
		func() error { disableCalls++; return nil },
	)
	if err != nil {
		t.Fatalf("NewPowerHandle failed: %v", err)
	}
	h.Release()
	h.Release()
	h.Release()
	if disableCalls != 1 {
		t.Errorf("disable called %d times, want exactly 1", disableCalls)
	}
}

func TestPowerHandle_EnableFailurePreventsHandle(t *testing.T) {
	_, err := NewPowerHandle(
		func() error { return errBoom },
		func() error { t.Fatal("disable should never run if enable failed"); return nil },
	)
	if err == nil {
		t.Fatal("expected NewPowerHandle to surface the enable error")
	}
}
