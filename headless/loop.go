// Package headless drives a session without a window, on a fixed tick.
package headless

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/session"
)

// InputSource supplies the intents for a given frame.
type InputSource interface {
	Input(frame uint64, state session.State) components.InputState
}

// InputFunc adapts a function to InputSource.
type InputFunc func(frame uint64, state session.State) components.InputState

func (f InputFunc) Input(frame uint64, state session.State) components.InputState {
	return f(frame, state)
}

// Autoplay holds right and presses jump every JumpEvery frames.
type Autoplay struct {
	JumpEvery uint64
}

func (a Autoplay) Input(frame uint64, state session.State) components.InputState {
	in := components.InputState{Right: true}
	if a.JumpEvery > 0 && frame%a.JumpEvery == 0 {
		in.Up = true
	}
	return in
}

// GameLoop steps a session tickRate times per second until stopped or
// until MaxFrames steps have run.
type GameLoop struct {
	session   *session.Session
	input     InputSource
	tickRate  int
	MaxFrames uint64

	// OnWorldChange is called after a step that moved to another world.
	OnWorldChange func(from, to session.State)

	stopOnce sync.Once
	stopChan chan struct{}
	frames   uint64
}

// NewGameLoop creates a loop. A tickRate of zero or less runs at the
// configured TPS.
func NewGameLoop(s *session.Session, input InputSource, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = cfg.C.TPS
	}
	return &GameLoop{
		session:  s,
		input:    input,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or MaxFrames is reached, and returns the
// final state.
func (g *GameLoop) Run() session.State {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return g.session.Snapshot()
		case <-ticker.C:
			g.tick()
			if g.MaxFrames > 0 && g.frames >= g.MaxFrames {
				log.Printf("Game loop finished after %d frames", g.frames)
				return g.session.Snapshot()
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

// Frames returns how many steps have run. Only valid after Run returns.
func (g *GameLoop) Frames() uint64 {
	return g.frames
}

func (g *GameLoop) tick() {
	before := g.session.Snapshot()
	g.session.Step(g.input.Input(g.frames, before))
	g.frames++

	after := g.session.Snapshot()
	if after.WorldIndex != before.WorldIndex && g.OnWorldChange != nil {
		g.OnWorldChange(before, after)
	}
}
