package headless

import (
	"testing"

	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/session"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, names ...string) *session.Session {
	t.Helper()
	var levels []*leveldata.Level
	for _, name := range names {
		cells := make([][]int, 10)
		for r := range cells {
			cells[r] = make([]int, 4)
		}
		cells[9] = []int{1, 1, 1, 1}
		grid, err := leveldata.NewTileGrid(cells, 32)
		require.NoError(t, err)
		levels = append(levels, &leveldata.Level{
			Name:        name,
			Grid:        grid,
			PlayerSpawn: &leveldata.Spawn{X: 10, Y: 10},
		})
	}
	s, err := session.New(levels)
	require.NoError(t, err)
	return s
}

func TestAutoplay(t *testing.T) {
	a := Autoplay{JumpEvery: 10}

	assert.Equal(t, components.InputState{Right: true, Up: true}, a.Input(0, session.State{}))
	assert.Equal(t, components.InputState{Right: true}, a.Input(3, session.State{}))
	assert.Equal(t, components.InputState{Right: true, Up: true}, a.Input(20, session.State{}))

	assert.Equal(t, components.InputState{Right: true}, Autoplay{}.Input(0, session.State{}))
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	s := newTestSession(t, "one")
	loop := NewGameLoop(s, InputFunc(func(uint64, session.State) components.InputState {
		return components.InputState{}
	}), 1000)
	loop.MaxFrames = 5

	state := loop.Run()

	assert.Equal(t, uint64(5), loop.Frames())
	assert.Equal(t, uint64(5), state.Frame)
}

func TestStopIsIdempotent(t *testing.T) {
	s := newTestSession(t, "one")
	loop := NewGameLoop(s, Autoplay{}, 1)

	loop.Stop()
	loop.Stop()

	state := loop.Run()
	assert.Zero(t, state.Frame)
	assert.Zero(t, loop.Frames())
}

func TestWorldChangeCallback(t *testing.T) {
	s := newTestSession(t, "one", "two")
	loop := NewGameLoop(s, Autoplay{}, 1000)
	loop.MaxFrames = 200

	var changes [][2]int
	loop.OnWorldChange = func(from, to session.State) {
		changes = append(changes, [2]int{from.WorldIndex, to.WorldIndex})
	}
	loop.Run()

	require.NotEmpty(t, changes)
	assert.Equal(t, [2]int{0, 1}, changes[0])
}

func TestNewGameLoopDefaultsTickRate(t *testing.T) {
	s := newTestSession(t, "one")

	for _, rate := range []int{0, -5} {
		loop := NewGameLoop(s, Autoplay{}, rate)
		assert.Equal(t, cfg.C.TPS, loop.tickRate)
	}

	loop := NewGameLoop(s, Autoplay{}, 0)
	loop.MaxFrames = 2
	assert.NotPanics(t, func() { loop.Run() })
	assert.Equal(t, uint64(2), loop.Frames())
}
