package systems

import (
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

func getOrCreateActions(ecs *ecs.ECS) *components.ActionsData {
	entry, ok := components.Actions.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Actions))
	}
	return components.Actions.Get(entry)
}

// UpdateActions polls keyboard and gamepads for every bound action.
func UpdateActions(ecs *ecs.ECS) {
	actions := getOrCreateActions(ecs)
	actions.Previous = actions.Current

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		actions.Current[id] = isBindingPressed(cfg.Input.Bindings[id])
	}

	// Left stick doubles as the d-pad for movement.
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -cfg.Input.AnalogDeadzone {
			actions.Current[cfg.ActionMoveLeft] = true
		}
		if x > cfg.Input.AnalogDeadzone {
			actions.Current[cfg.ActionMoveRight] = true
		}
	}
}

func isBindingPressed(binding cfg.InputBinding) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gp := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for _, button := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, button) {
				return true
			}
		}
	}
	return false
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(ecs *ecs.ECS, id cfg.ActionID) components.ActionState {
	actions := getOrCreateActions(ecs)
	curr := actions.Current[id]
	prev := actions.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// SampleInput converts the polled actions into simulation intents.
func SampleInput(ecs *ecs.ECS) components.InputState {
	actions := getOrCreateActions(ecs)
	return components.InputState{
		Left:  actions.Current[cfg.ActionMoveLeft],
		Right: actions.Current[cfg.ActionMoveRight],
		Up:    actions.Current[cfg.ActionJump],
		Down:  actions.Current[cfg.ActionMoveDown],
	}
}
