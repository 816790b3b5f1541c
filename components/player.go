package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed        float64
	JumpStrength float64 // negative
	Gravity      float64

	Grown bool

	// Invincibility expires at InvincibleUntil on the session clock.
	Invincible      bool
	InvincibleUntil time.Duration

	// AdvanceRequested is set when the player crosses the right edge and
	// consumed by the world transition at the end of the step.
	AdvanceRequested bool
}

var Player = donburi.NewComponentType[PlayerData]()
