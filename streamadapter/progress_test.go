package streamadapter

import "testing"

func TestProgress_DropsWhenUnconsumed(t *testing.T) {
	p := NewProgress(1000, 1)
	p.Report(10)
	p.Report(20) // buffer depth 1: this one may or may not fit, must never block

	select {
	case v := <-p.Updates():
		if v != 10 {
			t.Errorf("first update = %d, want 10", v)
		}
	default:
		t.Fatal("expected at least one update to be delivered")
	}
}
