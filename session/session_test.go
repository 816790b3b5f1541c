package session

import (
	"testing"

	"github.com/automoto/superbros/assets"
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/systems"
	"github.com/automoto/superbros/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// openLevel returns an all-empty world with the player spawn at (10,10).
func openLevel(t *testing.T, name string, rows, cols int) *leveldata.Level {
	t.Helper()
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
	}
	grid, err := leveldata.NewTileGrid(cells, 32)
	require.NoError(t, err)
	return &leveldata.Level{
		Name:        name,
		Grid:        grid,
		PlayerSpawn: &leveldata.Spawn{X: 10, Y: 10},
	}
}

func newSession(t *testing.T, levels ...*leveldata.Level) *Session {
	t.Helper()
	s, err := New(levels)
	require.NoError(t, err)
	return s
}

func player(s *Session) *donburi.Entry {
	entry, _ := tags.Player.First(s.ECS().World)
	return entry
}

func placePlayer(s *Session, x, y, speedY float64) {
	entry := player(s)
	components.Object.Get(entry).MoveTo(x, y)
	components.Physics.Get(entry).SpeedY = speedY
}

func countPowerUps(s *Session) int {
	n := 0
	tags.PowerUp.Each(s.ECS().World, func(*donburi.Entry) { n++ })
	return n
}

func TestNewRejectsEmptyInput(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoWorlds)

	_, err = New([]*leveldata.Level{{Name: "broken"}})
	assert.ErrorIs(t, err, leveldata.ErrEmptyGrid)
}

func TestNewStartsAtFirstSpawn(t *testing.T) {
	s := newSession(t, openLevel(t, "one", 10, 10))

	state := s.Snapshot()
	assert.Equal(t, 0, state.WorldIndex)
	assert.Equal(t, "one", state.WorldName)
	assert.Equal(t, 10.0, state.Player.X)
	assert.Equal(t, 10.0, state.Player.Y)
	assert.Equal(t, cfg.Player.Width, state.Player.W)
	assert.Zero(t, state.Frame)
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a := newSession(t, openLevel(t, "one", 10, 10))
	b := newSession(t, openLevel(t, "one", 10, 10))

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestStepRightOverridesLeft(t *testing.T) {
	s := newSession(t, openLevel(t, "one", 10, 10))

	s.Step(components.InputState{Left: true, Right: true})

	state := s.Snapshot()
	assert.Equal(t, 12.0, state.Player.X)
	assert.Equal(t, uint64(1), state.Frame)
}

func TestStompKillsEnemy(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.Enemies = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindGoomba}}
	s := newSession(t, level)

	placePlayer(s, 100, 90, 3)
	s.Step(components.InputState{})

	enemy, ok := tags.Enemy.First(s.ECS().World)
	require.True(t, ok)
	assert.False(t, components.Foe.Get(enemy).Alive)

	state := s.Snapshot()
	assert.Equal(t, cfg.Player.JumpStrength/2, state.SpeedY)
	assert.Equal(t, cfg.Score.EnemyStomp, state.Score)

	obj := components.Object.Get(enemy)
	assert.Nil(t, obj.Space, "dead enemies leave the world space")
	assert.NotContains(t, systems.GetLevel(s.ECS()).Current().Space.Objects(), obj.Object)
}

func TestStompFromBesideStillCounts(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.Enemies = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindTurtle}}
	s := newSession(t, level)

	// Level with the enemy, moving down: side contact is a stomp.
	placePlayer(s, 90, 100, 1)
	s.Step(components.InputState{})

	enemy, _ := tags.Enemy.First(s.ECS().World)
	assert.False(t, components.Foe.Get(enemy).Alive)
}

func TestDeadEnemyIsInert(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.Enemies = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindGoomba}}
	s := newSession(t, level)

	placePlayer(s, 100, 90, 3)
	s.Step(components.InputState{})

	enemy, _ := tags.Enemy.First(s.ECS().World)
	x := components.Object.Get(enemy).X

	placePlayer(s, 100, 100, -1)
	s.Step(components.InputState{})

	assert.Equal(t, x, components.Object.Get(enemy).X, "dead enemies stop moving")
	assert.Equal(t, 99.5, s.Snapshot().Player.Y, "and no longer hurt")
}

func TestSideHitRespawnsPlayer(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.Enemies = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindGoomba}}
	s := newSession(t, level)

	placePlayer(s, 100, 100, -1)
	components.Physics.Get(player(s)).SpeedX = 2
	s.Step(components.InputState{})

	state := s.Snapshot()
	assert.Equal(t, 10.0, state.Player.X)
	assert.Equal(t, 10.0, state.Player.Y)
	assert.Zero(t, state.SpeedX)
	assert.Zero(t, state.SpeedY)

	enemy, _ := tags.Enemy.First(s.ECS().World)
	assert.True(t, components.Foe.Get(enemy).Alive)
	assert.Zero(t, state.Score)
}

func TestInvinciblePlayerPassesThrough(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.Enemies = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindGoomba}}
	s := newSession(t, level)

	data := components.Player.Get(player(s))
	data.Invincible = true
	data.InvincibleUntil = cfg.PowerUps.StarDuration

	placePlayer(s, 100, 100, -1)
	s.Step(components.InputState{})

	state := s.Snapshot()
	assert.Equal(t, 100.0, state.Player.X)
	assert.Equal(t, 99.5, state.Player.Y)

	enemy, _ := tags.Enemy.First(s.ECS().World)
	assert.True(t, components.Foe.Get(enemy).Alive)
}

func TestArmoredFoesLoseOneHealthPerStomp(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		spawn func(level *leveldata.Level, spawn leveldata.Spawn)
		first func(s *Session) (*donburi.Entry, bool)
	}{
		{
			name:  "miniboss",
			kind:  leveldata.KindMiniBoss,
			spawn: func(l *leveldata.Level, sp leveldata.Spawn) { l.MiniBosses = append(l.MiniBosses, sp) },
			first: func(s *Session) (*donburi.Entry, bool) { return tags.MiniBoss.First(s.ECS().World) },
		},
		{
			name:  "boss",
			kind:  leveldata.KindBoss,
			spawn: func(l *leveldata.Level, sp leveldata.Spawn) { l.Bosses = append(l.Bosses, sp) },
			first: func(s *Session) (*donburi.Entry, bool) { return tags.Boss.First(s.ECS().World) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := openLevel(t, "arena", 10, 20)
			tt.spawn(level, leveldata.Spawn{X: 200, Y: 150, Kind: tt.kind})
			s := newSession(t, level)

			foe, ok := tt.first(s)
			require.True(t, ok)
			full := cfg.Foes[tt.kind].Health

			foeX := components.Object.Get(foe).X
			placePlayer(s, foeX, 140, 3)
			s.Step(components.InputState{})

			assert.Equal(t, full-1, components.Health.Get(foe).Current)
			assert.True(t, components.Foe.Get(foe).Alive)
			assert.Equal(t, cfg.Score.BossHit, s.Snapshot().Score)
			assert.Equal(t, cfg.Player.JumpStrength/2, s.Snapshot().SpeedY)
		})
	}
}

func TestBossDefeatedAfterLastHit(t *testing.T) {
	level := openLevel(t, "arena", 10, 20)
	level.Bosses = []leveldata.Spawn{{X: 200, Y: 150, Kind: leveldata.KindBoss}}
	s := newSession(t, level)

	boss, _ := tags.Boss.First(s.ECS().World)
	components.Health.Get(boss).Current = 1

	placePlayer(s, 200, 140, 3)
	s.Step(components.InputState{})

	assert.Zero(t, components.Health.Get(boss).Current)
	assert.False(t, components.Foe.Get(boss).Alive)
	assert.Equal(t, cfg.Score.BossHit+cfg.Score.BossDefeat, s.Snapshot().Score)
}

func TestStarLastsExactlyFiveSeconds(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.PowerUps = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindStar}}
	s := newSession(t, level)

	placePlayer(s, 100, 100, 0)
	s.Step(components.InputState{})
	require.True(t, s.Snapshot().Invincible)
	assert.False(t, s.Snapshot().Grown)

	// Picked up on frame 1; 5s at 60 TPS ends on frame 301.
	for i := 0; i < 299; i++ {
		s.Step(components.InputState{})
	}
	assert.Equal(t, uint64(300), s.Snapshot().Frame)
	assert.True(t, s.Snapshot().Invincible)

	s.Step(components.InputState{})
	assert.False(t, s.Snapshot().Invincible)
}

func TestMushroomGrowsUpwards(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.PowerUps = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindMushroom}}
	s := newSession(t, level)

	placePlayer(s, 100, 100, 0)
	s.Step(components.InputState{})

	state := s.Snapshot()
	assert.True(t, state.Grown)
	assert.False(t, state.Invincible)
	assert.Equal(t, cfg.Player.GrownHeight, state.Player.H)
	assert.Equal(t, 116.5, state.Player.Bottom())
	assert.Equal(t, cfg.Score.PowerUp, state.Score)

	mushroom, _ := tags.PowerUp.First(s.ECS().World)
	assert.Nil(t, components.Object.Get(mushroom).Space, "collected power-ups leave the world space")

	// Collected power-ups are not applied again.
	placePlayer(s, 100, 100, 0)
	s.Step(components.InputState{})
	assert.Equal(t, cfg.Score.PowerUp, s.Snapshot().Score)
}

func TestSecretRevealsOnce(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	cells := make([][]int, 10)
	for r := range cells {
		cells[r] = make([]int, 10)
	}
	cells[3][3] = int(leveldata.CellSecret)
	grid, err := leveldata.NewTileGrid(cells, 32)
	require.NoError(t, err)
	level.Grid = grid
	s := newSession(t, level)

	placePlayer(s, 100, 100, 0)
	s.Step(components.InputState{})

	assert.Equal(t, leveldata.CellEmpty, grid.At(3, 3))
	require.Equal(t, 1, countPowerUps(s))

	tags.PowerUp.Each(s.ECS().World, func(e *donburi.Entry) {
		r := components.Object.Get(e).Rect()
		assert.Equal(t, 106.0, r.X)
		assert.Equal(t, 84.0, r.Y)
		assert.Equal(t, components.PowerUpMushroom, components.PowerUp.Get(e).Kind)
	})

	placePlayer(s, 100, 100, 0)
	s.Step(components.InputState{})
	assert.Equal(t, 1, countPowerUps(s))
	assert.Equal(t, cfg.Score.Secret, s.Snapshot().Score)
}

func TestTwoSecretsInOneStep(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	cells := make([][]int, 10)
	for r := range cells {
		cells[r] = make([]int, 10)
	}
	cells[3][3] = int(leveldata.CellSecret)
	cells[3][4] = int(leveldata.CellSecret)
	grid, err := leveldata.NewTileGrid(cells, 32)
	require.NoError(t, err)
	level.Grid = grid
	s := newSession(t, level)

	placePlayer(s, 120, 100, 0)
	s.Step(components.InputState{})

	assert.Equal(t, 2, countPowerUps(s))
}

func TestWorldTransitionWraps(t *testing.T) {
	first := openLevel(t, "first", 10, 4)
	first.Enemies = []leveldata.Spawn{{X: 60, Y: 200, Kind: leveldata.KindGoomba}}
	second := openLevel(t, "second", 10, 4)
	second.PlayerSpawn = &leveldata.Spawn{X: 20, Y: 30}
	s := newSession(t, first, second)

	enemy, _ := tags.Enemy.First(s.ECS().World)

	placePlayer(s, 111, 10, 0)
	s.Step(components.InputState{Right: true})

	state := s.Snapshot()
	assert.Equal(t, 1, state.WorldIndex)
	assert.Equal(t, "second", state.WorldName)
	assert.Equal(t, 20.0, state.Player.X)
	assert.Equal(t, 30.0, state.Player.Y)
	assert.Zero(t, state.SpeedX)
	assert.Zero(t, state.SpeedY)

	// The first world's roster is frozen while away.
	x := components.Object.Get(enemy).X
	s.Step(components.InputState{})
	assert.Equal(t, x, components.Object.Get(enemy).X)

	placePlayer(s, 111, 10, 0)
	s.Step(components.InputState{Right: true})

	state = s.Snapshot()
	assert.Equal(t, 0, state.WorldIndex)
	assert.Equal(t, 10.0, state.Player.X)
	assert.Equal(t, 10.0, state.Player.Y)
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newSession(t, openLevel(t, "one", 10, 10))

	s.Step(components.InputState{})
	before := s.Snapshot()

	assert.True(t, s.TogglePause())
	assert.True(t, s.Paused())
	for i := 0; i < 5; i++ {
		s.Step(components.InputState{Right: true})
	}
	assert.Equal(t, before, s.Snapshot())

	assert.False(t, s.TogglePause())
	s.Step(components.InputState{})
	assert.Equal(t, before.Frame+1, s.Snapshot().Frame)
}

func TestBundledWorldsPlay(t *testing.T) {
	levels, err := assets.LoadWorlds()
	require.NoError(t, err)
	s := newSession(t, levels...)

	for i := 0; i < 120; i++ {
		s.Step(components.InputState{})
	}

	state := s.Snapshot()
	assert.Equal(t, 0, state.WorldIndex)
	assert.True(t, state.OnGround, "player settles on the first world's floor")
}

func TestContactNeedsSharedSpace(t *testing.T) {
	level := openLevel(t, "one", 10, 10)
	level.Enemies = []leveldata.Spawn{{X: 100, Y: 100, Kind: leveldata.KindGoomba}}
	s := newSession(t, level)

	// A player taken out of the world's space is out of reach.
	entry := player(s)
	obj := components.Object.Get(entry)
	obj.Space.Remove(obj.Object)

	placePlayer(s, 100, 100, -1)
	s.Step(components.InputState{})

	state := s.Snapshot()
	assert.Equal(t, 100.0, state.Player.X)
	assert.Equal(t, 99.5, state.Player.Y)
}
