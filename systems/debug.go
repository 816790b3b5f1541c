package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/fonts"
	"github.com/automoto/superbros/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the current world's space.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}
	level := GetLevel(e)
	if level == nil {
		return
	}

	camX, camY := cameraOffset(e, screen)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	objects := level.Current().Space.Objects()
	for _, obj := range objects {
		x := obj.X + camX
		y := obj.Y + camY
		if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
			continue
		}

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{100, 100, 100, 255}
		} else if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvFoe) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvPowerUp) {
			c = color.RGBA{0, 255, 0, 255}
		}

		vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
	}

	info := fmt.Sprintf("TPS %.0f  objects %d  frame %d", ebiten.ActualTPS(), len(objects), GetOrCreateClock(e).Frame)
	text.Draw(screen, info, fonts.Small.Get(), 10, int(height)-10, cfg.HUD.DebugColor)
}
