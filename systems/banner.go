package systems

import (
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateBanner returns the singleton Banner component, creating if needed.
func GetOrCreateBanner(ecs *ecs.ECS) *components.BannerData {
	if _, ok := components.Banner.First(ecs.World); !ok {
		ecs.World.Create(components.Banner)
	}

	ent, _ := components.Banner.First(ecs.World)
	return components.Banner.Get(ent)
}

// ShowBanner displays text at full opacity and starts fading it out.
func ShowBanner(ecs *ecs.ECS, text string) {
	banner := GetOrCreateBanner(ecs)
	banner.Text = text
	banner.Alpha = 1
	banner.Fade = gween.New(1, 0, cfg.Banner.Duration, ease.InQuad)
}

// UpdateBanner advances the fade by one simulated step.
func UpdateBanner(ecs *ecs.ECS) {
	banner := GetOrCreateBanner(ecs)
	if banner.Fade == nil {
		return
	}

	alpha, done := banner.Fade.Update(GetOrCreateClock(ecs).Delta())
	banner.Alpha = alpha
	if done {
		banner.Alpha = 0
		banner.Fade = nil
	}
}
