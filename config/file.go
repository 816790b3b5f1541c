package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrBadTuning = errors.New("invalid tuning value")

// Tuning is the subset of settings a TOML file may override. Keys left
// out of the file keep their current values.
type Tuning struct {
	TPS         int                  `toml:"tps"`
	StarSeconds float64              `toml:"star_seconds"`
	Player      PlayerTuning         `toml:"player"`
	Foes        map[string]FoeTuning `toml:"foes"`
}

type PlayerTuning struct {
	Speed        float64 `toml:"speed"`
	JumpStrength float64 `toml:"jump_strength"`
	Gravity      float64 `toml:"gravity"`
}

type FoeTuning struct {
	Speed float64 `toml:"speed"`
}

// CurrentTuning returns the tunables as they are now.
func CurrentTuning() Tuning {
	t := Tuning{
		TPS:         C.TPS,
		StarSeconds: PowerUps.StarDuration.Seconds(),
		Player: PlayerTuning{
			Speed:        Player.Speed,
			JumpStrength: Player.JumpStrength,
			Gravity:      Player.Gravity,
		},
		Foes: make(map[string]FoeTuning, len(Foes)),
	}
	for kind, foe := range Foes {
		t.Foes[kind] = FoeTuning{Speed: foe.Speed}
	}
	return t
}

// LoadTuning reads a TOML file over the current tunables and applies the
// result. Nothing is applied when the file is invalid.
func LoadTuning(path string) error {
	t := CurrentTuning()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if err := t.validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	ApplyTuning(t)
	return nil
}

func (t Tuning) validate() error {
	if t.TPS <= 0 {
		return fmt.Errorf("tps %d: %w", t.TPS, ErrBadTuning)
	}
	if t.StarSeconds <= 0 {
		return fmt.Errorf("star_seconds %v: %w", t.StarSeconds, ErrBadTuning)
	}
	if t.Player.Speed < 0 || t.Player.Gravity < 0 {
		return fmt.Errorf("player speed and gravity must not be negative: %w", ErrBadTuning)
	}
	if t.Player.JumpStrength >= 0 {
		return fmt.Errorf("jump_strength %v must be negative: %w", t.Player.JumpStrength, ErrBadTuning)
	}
	for kind, foe := range t.Foes {
		if _, ok := Foes[kind]; !ok {
			return fmt.Errorf("foe %q: %w", kind, ErrBadTuning)
		}
		if foe.Speed < 0 {
			return fmt.Errorf("foe %q speed %v: %w", kind, foe.Speed, ErrBadTuning)
		}
	}
	return nil
}

// ApplyTuning writes t into the package settings. Sessions read these
// when they are created.
func ApplyTuning(t Tuning) {
	C.TPS = t.TPS
	PowerUps.StarDuration = time.Duration(t.StarSeconds * float64(time.Second))
	Player.Speed = t.Player.Speed
	Player.JumpStrength = t.Player.JumpStrength
	Player.Gravity = t.Player.Gravity
	for kind, foe := range t.Foes {
		ft := Foes[kind]
		ft.Speed = foe.Speed
		Foes[kind] = ft
	}
}
