package graphics

import (
	"testing"
	"time"
)

func TestFPSLimiterDisabled(t *testing.T) {
	f := NewFPSLimiter(0)
	start := time.Now()
	for i := 0; i < 100; i++ {
		f.Wait()
	}
	if d := time.Since(start); d > 50*time.Millisecond {
		t.Errorf("disabled limiter should not block, took %v", d)
	}
}

func TestFPSLimiterPaces(t *testing.T) {
	f := NewFPSLimiter(100)
	start := time.Now()
	for i := 0; i < 5; i++ {
		f.Wait()
	}
	if d := time.Since(start); d < 45*time.Millisecond {
		t.Errorf("5 frames at 100 FPS took only %v", d)
	}
}
