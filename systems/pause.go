package systems

import (
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// TogglePause flips the pause state and returns the new value.
func TogglePause(ecs *ecs.ECS) bool {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = !pause.IsPaused
	return pause.IsPaused
}

// DrawPause renders the pause overlay when paused
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	title := "PAUSED"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	text.Draw(screen, title, fonts.Title.Get(), int((width-float64(titleWidth))/2), int(height/2), cfg.Pause.TextColor)

	hint := "Esc: Resume"
	hintWidth := len(hint) * 7
	text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
