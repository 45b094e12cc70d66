package game

import "time"

// Clock delivers ticks to a Session while it is started. C returns nil
// while stopped so a select on it blocks.
type Clock interface {
	Start()
	Stop()
	C() <-chan time.Time
}

// TickerClock is a Clock backed by time.Ticker
type TickerClock struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewTickerClock creates a stopped clock firing every interval
func NewTickerClock(interval time.Duration) *TickerClock {
	return &TickerClock{interval: interval}
}

// Start begins ticking. Starting a running clock is a no-op.
func (c *TickerClock) Start() {
	if c.ticker != nil {
		return
	}
	c.ticker = time.NewTicker(c.interval)
}

// Stop halts ticking; pending ticks are discarded
func (c *TickerClock) Stop() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	c.ticker = nil
}

// C returns the tick channel, or nil while stopped
func (c *TickerClock) C() <-chan time.Time {
	if c.ticker == nil {
		return nil
	}
	return c.ticker.C
}

// Running reports whether the clock is started
func (c *TickerClock) Running() bool {
	return c.ticker != nil
}
