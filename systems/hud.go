package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD draws the score and the current world name.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	score := GetOrCreateScore(e)
	text.Draw(screen, fmt.Sprintf("Score: %d", score.Points), fonts.Regular.Get(), cfg.HUD.ScoreX, cfg.HUD.ScoreY, cfg.HUD.TextColor)

	if level := GetLevel(e); level != nil {
		label := fmt.Sprintf("World %d/%d", level.CurrentIndex+1, len(level.Worlds))
		text.Draw(screen, label, fonts.Regular.Get(), cfg.HUD.WorldX, cfg.HUD.WorldY, cfg.HUD.TextColor)
	}
}

// DrawBanner draws the fading world title.
func DrawBanner(e *ecs.ECS, screen *ebiten.Image) {
	banner := GetOrCreateBanner(e)
	if banner.Alpha <= 0 || banner.Text == "" {
		return
	}

	c := cfg.Banner.TextColor
	a := float64(banner.Alpha)
	faded := color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}

	width := screen.Bounds().Dx()
	textWidth := len(banner.Text) * 20 // Approximate width for 32pt font
	text.Draw(screen, banner.Text, fonts.Title.Get(), (width-textWidth)/2, cfg.Banner.Y, faded)
}
