package systems

import (
	"image/color"

	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/shared/leveldata"
	"github.com/automoto/superbros/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var tileColors = map[leveldata.CellKind]color.RGBA{
	leveldata.CellSolid:         cfg.Tiles.SolidColor,
	leveldata.CellSpecialGround: cfg.Tiles.SpecialGroundColor,
	leveldata.CellSecret:        cfg.Tiles.SecretColor,
}

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}

func fillBox(screen *ebiten.Image, obj *components.ObjectData, camX, camY float64, c color.Color) {
	vector.FillRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), c, false)
}

// DrawWorld draws the current world's tiles and live roster as solid rectangles.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Tiles.BackgroundColor)

	level := GetLevel(e)
	if level == nil {
		return
	}
	world := level.Current()
	camX, camY := cameraOffset(e, screen)

	world.Grid.Each(func(row, col int, kind leveldata.CellKind) {
		c, ok := tileColors[kind]
		if !ok {
			return
		}
		r := world.Grid.CellRect(row, col)
		vector.FillRect(screen, float32(r.X+camX), float32(r.Y+camY), float32(r.W), float32(r.H), c, false)
	})

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		if !inCurrentWorld(level, entry) || components.PowerUp.Get(entry).Collected {
			return
		}
		c := cfg.PowerUps.MushroomColor
		if components.PowerUp.Get(entry).Kind == components.PowerUpStar {
			c = cfg.PowerUps.StarColor
		}
		fillBox(screen, components.Object.Get(entry), camX, camY, c)
	})

	components.Foe.Each(e.World, func(entry *donburi.Entry) {
		foe := components.Foe.Get(entry)
		if !inCurrentWorld(level, entry) || !foe.Alive {
			return
		}
		fillBox(screen, components.Object.Get(entry), camX, camY, cfg.Foes[foe.Kind].Color)
	})

	if entry, ok := playerEntry(e); ok {
		player := components.Player.Get(entry)
		frame := GetOrCreateClock(e).Frame
		if player.Invincible && (frame/cfg.InvincibleBlinkFrames)%2 == 1 {
			return
		}
		fillBox(screen, components.Object.Get(entry), camX, camY, cfg.Player.Color)
	}
}
