package builder

import "testing"

func TestRateLimiterFiresImmediatelyOnce(t *testing.T) {
	r := NewRateLimiter(0.25)
	if !r.Try(0) {
		t.Fatal("first try should fire")
	}
	if r.Try(0.1) {
		t.Error("second try within the interval should not fire")
	}
}

func TestRateLimiterFiresAfterInterval(t *testing.T) {
	r := NewRateLimiter(0.25)
	r.Try(1.0)
	if r.Try(1.24) {
		t.Error("fired before the interval elapsed")
	}
	if !r.Try(1.25) {
		t.Error("should fire exactly at the interval")
	}
	if !r.Try(1.75) {
		t.Error("should fire again after another interval")
	}
}

func TestRateLimiterReset(t *testing.T) {
	r := NewRateLimiter(10)
	r.Try(1.0)
	r.Reset()
	if !r.Try(1.01) {
		t.Error("reset should allow an immediate fire")
	}
}
