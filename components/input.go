package components

import "github.com/yohamta/donburi"

// InputState is the set of intents sampled once at the start of a step.
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

type InputData struct {
	State InputState
}

var Input = donburi.NewComponentType[InputData]()
