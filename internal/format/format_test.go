package format

import (
	"testing"
	"time"
)

// TestFormatExecutionDuration verifies duration formatting.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{500 * time.Nanosecond, "0µs"},
		{10 * time.Microsecond, "10µs"},
		{10 * time.Millisecond, "10ms"},
		{2 * time.Second, "2s"},
		{1234567 * time.Microsecond, "1.235s"},
	}

	for _, tt := range tests {
		got := FormatExecutionDuration(tt.d)
		if got != tt.expected {
			t.Errorf("FormatExecutionDuration(%v) = %s; want %s", tt.d, got, tt.expected)
		}
	}
}

// TestFormatETA verifies ETA formatting.
func TestFormatETA(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		eta      time.Duration
		expected string
	}{
		{"Zero duration", 0, "calculating..."},
		{"Negative duration", -time.Second, "calculating..."},
		{"Less than a second", 500 * time.Millisecond, "< 1s"},
		{"One second", time.Second, "1s"},
		{"Multiple seconds", 45 * time.Second, "45s"},
		{"One minute", time.Minute, "1m"},
		{"Minutes and seconds", 2*time.Minute + 30*time.Second, "2m30s"},
		{"One hour", time.Hour, "1h"},
		{"Hours and minutes", time.Hour + 15*time.Minute, "1h15m"},
		{"Hours only (no minutes)", 2 * time.Hour, "2h"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := FormatETA(tc.eta)
			if result != tc.expected {
				t.Errorf("FormatETA(%v) = %q, want %q", tc.eta, result, tc.expected)
			}
		})
	}
}

// fixedClock returns an ETA whose clock reads start+elapsed.
func fixedClock(total int, elapsed time.Duration) *ETA {
	e := NewETA(total)
	e.now = func() time.Time { return e.start.Add(elapsed) }
	return e
}

// TestETAEstimate verifies the linear estimate and its edge cases.
func TestETAEstimate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		total   int
		done    int
		elapsed time.Duration
		want    time.Duration
	}{
		{"nothing done", 10, 0, time.Second, 0},
		{"quarter done", 4, 1, time.Second, 3 * time.Second},
		{"half done", 10, 5, 2 * time.Second, 2 * time.Second},
		{"complete", 10, 10, time.Second, 0},
		{"over complete", 10, 12, time.Second, 0},
		{"capped", 1000000, 1, time.Hour, maxETA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := fixedClock(tt.total, tt.elapsed)
			if got := e.Estimate(tt.done); got != tt.want {
				t.Errorf("Estimate(%d) = %v, want %v", tt.done, got, tt.want)
			}
		})
	}
}

// TestNewETAClampsTotal verifies a non-positive total is raised to one.
func TestNewETAClampsTotal(t *testing.T) {
	t.Parallel()
	e := fixedClock(0, time.Second)
	if e.total != 1 {
		t.Errorf("total = %d, want 1", e.total)
	}
	if e.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, want 1s", e.Elapsed())
	}
}
