package systems

import (
	"github.com/automoto/superbros/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ecs.World.Create(components.Settings)
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}

// ToggleDebug flips the collision overlay.
func ToggleDebug(ecs *ecs.ECS) bool {
	settings := GetOrCreateSettings(ecs)
	settings.Debug = !settings.Debug
	return settings.Debug
}
