package gui

import (
	"time"

	"github.com/Tyl3rA/digital-kaleidoscope/internal/config"
)

// maxCatchUp bounds the frames rendered after a stall.
const maxCatchUp = 4

// frameClock converts variable window frame times into fixed ticks.
type frameClock struct {
	period time.Duration
	acc    time.Duration
}

func newFrameClock(period time.Duration) *frameClock {
	if period <= 0 {
		period = config.DefaultTick
	}
	return &frameClock{period: period}
}

// advance adds dt and returns how many ticks are due.
func (c *frameClock) advance(dt time.Duration) int {
	c.acc += dt
	n := 0
	for c.acc >= c.period {
		c.acc -= c.period
		n++
		if n == maxCatchUp {
			c.acc = 0
			break
		}
	}
	return n
}
