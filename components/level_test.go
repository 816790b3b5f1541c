package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelAdvanceWraps(t *testing.T) {
	level := LevelData{Worlds: []*WorldData{{Name: "a"}, {Name: "b"}, {Name: "c"}}}

	assert.Equal(t, 1, level.Advance())
	assert.Equal(t, 2, level.Advance())
	assert.Equal(t, 0, level.Advance())
	assert.Equal(t, "a", level.Current().Name)
}

func TestLevelWorldIndex(t *testing.T) {
	level := LevelData{Worlds: []*WorldData{{Name: "a"}}}

	w, err := level.World(0)
	require.NoError(t, err)
	assert.Equal(t, "a", w.Name)

	_, err = level.World(1)
	require.ErrorIs(t, err, ErrWorldIndex)
	_, err = level.World(-1)
	require.ErrorIs(t, err, ErrWorldIndex)
}

func TestClockElapsed(t *testing.T) {
	clock := ClockData{TPS: 60}
	assert.Equal(t, time.Duration(0), clock.Elapsed())

	clock.Frame = 300
	assert.Equal(t, 5*time.Second, clock.Elapsed())

	clock.Frame = 1
	assert.Equal(t, time.Second/60, clock.Elapsed())
	assert.InDelta(t, 1.0/60, float64(clock.Delta()), 1e-6)

	assert.Equal(t, time.Duration(0), (&ClockData{Frame: 10}).Elapsed())
}
