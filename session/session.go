// Package session owns one running game: its ECS world, the worlds it
// cycles through and the fixed order of simulation systems.
package session

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/superbros/components"
	"github.com/automoto/superbros/shared/gamemath"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/systems"
	"github.com/automoto/superbros/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoWorlds = factory.ErrNoWorlds

// Session is a single-threaded simulation. Step must not be called
// concurrently.
type Session struct {
	id  string
	ecs *ecs.ECS
}

// State is a read-only snapshot taken between steps.
type State struct {
	Frame      uint64
	WorldIndex int
	WorldName  string
	Score      int

	Player     gamemath.Rect
	SpeedX     float64
	SpeedY     float64
	OnGround   bool
	Invincible bool
	Grown      bool
}

// New builds a session over levels. Levels are owned by the session from
// here on: secret cells in their grids are consumed during play.
func New(levels []*leveldata.Level) (*Session, error) {
	s := &Session{
		id:  uuid.NewString(),
		ecs: ecs.NewECS(donburi.NewWorld()),
	}

	levelEntry, err := factory.CreateLevel(s.ecs, levels)
	if err != nil {
		if errors.Is(err, factory.ErrNoWorlds) {
			return nil, ErrNoWorlds
		}
		return nil, fmt.Errorf("create level: %w", err)
	}
	level := components.Level.Get(levelEntry)

	factory.CreatePlayer(s.ecs, level.Current())
	factory.CreateCamera(s.ecs)
	systems.GetOrCreateClock(s.ecs)
	systems.GetOrCreateScore(s.ecs)

	// Order matters: timed state changes first, the world swap last.
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePowerUps))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateMiniBosses))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBoss))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSecrets))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWorldTransition))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBanner))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	log.Printf("Session %s started with %d worlds (first: %s)", s.id, len(level.Worlds), level.Current().Name)
	return s, nil
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// ECS exposes the entity world for renderers and tools.
func (s *Session) ECS() *ecs.ECS {
	return s.ecs
}

// Step samples input once and runs every simulation system in order.
func (s *Session) Step(input components.InputState) {
	systems.SetInput(s.ecs, input)
	s.ecs.Update()
}

// TogglePause freezes or resumes the simulation, clock included.
func (s *Session) TogglePause() bool {
	return systems.TogglePause(s.ecs)
}

// Paused reports whether steps are currently skipped.
func (s *Session) Paused() bool {
	return systems.GetOrCreatePause(s.ecs).IsPaused
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() State {
	level := systems.GetLevel(s.ecs)
	state := State{
		Frame:      systems.GetOrCreateClock(s.ecs).Frame,
		WorldIndex: level.CurrentIndex,
		WorldName:  level.Current().Name,
		Score:      systems.GetOrCreateScore(s.ecs).Points,
	}

	if entry, ok := components.Player.First(s.ecs.World); ok {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		state.Player = components.Object.Get(entry).Rect()
		state.SpeedX = physics.SpeedX
		state.SpeedY = physics.SpeedY
		state.OnGround = physics.OnGround
		state.Invincible = player.Invincible
		state.Grown = player.Grown
	}
	return state
}
