package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// SetInput records the intents for the next step. Input is sampled once
// per step and never buffered between steps.
func SetInput(ecs *ecs.ECS, state components.InputState) {
	getOrCreateInput(ecs).State = state
}

// GetInput returns the intents of the current step.
func GetInput(ecs *ecs.ECS) components.InputState {
	return getOrCreateInput(ecs).State
}
