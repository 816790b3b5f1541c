package factory

import (
	"github.com/automoto/superbros/archetypes"
	"github.com/automoto/superbros/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{World: -1})
}
