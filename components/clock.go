package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is simulation time. It only advances when a step runs, so
// anything timed against it freezes with the simulation.
type ClockData struct {
	Frame uint64
	TPS   int
}

// Elapsed returns the simulated time since the session started.
func (c *ClockData) Elapsed() time.Duration {
	if c.TPS <= 0 {
		return 0
	}
	return time.Duration(c.Frame) * time.Second / time.Duration(c.TPS)
}

// Delta is the simulated length of one step in seconds.
func (c *ClockData) Delta() float32 {
	if c.TPS <= 0 {
		return 0
	}
	return 1 / float32(c.TPS)
}

var Clock = donburi.NewComponentType[ClockData]()
