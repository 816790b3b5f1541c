package components

import "github.com/yohamta/donburi"

// RosterData ties an entity to the world that owns it. Only the current
// world's roster is simulated and drawn.
type RosterData struct {
	World int
}

var Roster = donburi.NewComponentType[RosterData]()
