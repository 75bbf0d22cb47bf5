// Package fps counts rendered frames and reports the rate once per period.
package fps

import "time"

// Counter accumulates frames and calls Report with the measured rate every
// Period. The zero value reports once per second and never calls a nil Report.
type Counter struct {
	Period time.Duration
	Report func(fps float64)

	start  time.Time
	frames int
	total  int
}

// Tick records a frame presented at now.
func (c *Counter) Tick(now time.Time) {
	c.total++
	if c.start.IsZero() {
		c.start = now
		return
	}
	c.frames++
	period := c.Period
	if period <= 0 {
		period = time.Second
	}
	elapsed := now.Sub(c.start)
	if elapsed < period {
		return
	}
	if c.Report != nil {
		c.Report(float64(c.frames) / elapsed.Seconds())
	}
	c.start = now
	c.frames = 0
}

// Total returns the number of frames recorded.
func (c *Counter) Total() int { return c.total }
