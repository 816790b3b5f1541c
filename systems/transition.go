package systems

import (
	"fmt"
	"log"

	"github.com/automoto/superbros/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWorldTransition applies an advance requested by the player this
// step: the player moves into the next world's space at its restart point.
// The previous world's roster stays behind with its world.
func UpdateWorldTransition(ecs *ecs.ECS) {
	entry, ok := playerEntry(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if !player.AdvanceRequested {
		return
	}
	player.AdvanceRequested = false

	level := GetLevel(ecs)
	if level == nil {
		return
	}

	obj := components.Object.Get(entry)
	from := level.Current()
	from.Space.Remove(obj.Object)

	index := level.Advance()
	to := level.Current()
	to.Space.Add(obj.Object)

	respawnPlayer(to, obj, components.Physics.Get(entry))
	ShowBanner(ecs, fmt.Sprintf("World %d", index+1))

	log.Printf("World advanced: %s -> %s (index %d)", from.Name, to.Name, index)
}
