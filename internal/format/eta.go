package format

import (
	"fmt"
	"time"
)

// maxETA caps estimates derived from very slow early progress.
const maxETA = 24 * time.Hour

// ETA estimates the remaining time of a task made of a fixed number of units,
// assuming the remaining units progress at the average rate observed so far.
type ETA struct {
	total int
	start time.Time
	now   func() time.Time
}

// NewETA starts measuring a task of total units. A total below 1 is raised to 1.
func NewETA(total int) *ETA {
	return &ETA{total: max(1, total), start: time.Now(), now: time.Now}
}

// Elapsed returns the time since the ETA was created.
func (e *ETA) Elapsed() time.Duration {
	return e.now().Sub(e.start)
}

// Estimate returns the remaining time after done units, or 0 when nothing is
// done yet or the task is complete.
func (e *ETA) Estimate(done int) time.Duration {
	if done <= 0 || done >= e.total {
		return 0
	}
	perUnit := float64(e.Elapsed()) / float64(done)
	remaining := time.Duration(perUnit * float64(e.total-done))
	return min(remaining, maxETA)
}

// FormatETA formats a remaining-time estimate with at most two units.
//
// Parameters:
//   - eta: The estimate. Zero or negative means no estimate is available yet.
//
// Returns:
//   - string: "calculating...", "< 1s", or a compact form such as "45s", "2m30s", "1h15m".
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}

	eta = eta.Round(time.Second)
	h := int(eta / time.Hour)
	m := int(eta % time.Hour / time.Minute)
	s := int(eta % time.Minute / time.Second)

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
