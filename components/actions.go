package components

import (
	cfg "github.com/automoto/superbros/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the state of a single action
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// ActionsData holds raw device state per action for the current and
// previous frame, used for menu navigation and toggles.
type ActionsData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Actions = donburi.NewComponentType[ActionsData]()
