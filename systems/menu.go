package systems

import (
	"github.com/automoto/superbros/components"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// quit is called when the player picks Exit or backs out.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func() interface{}, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		UpdateActions(e)
		menu := GetOrCreateMenu(e)

		// Navigate menu with wrap-around
		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(e, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(e, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(e, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuPlay:
				sceneChanger.ChangeScene(createWorldScene())
			case components.MainMenuExit:
				quit()
			}
		}

		if GetAction(e, cfg.ActionMenuBack).JustPressed {
			quit()
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	title := "SUPER BROS"
	titleWidth := len(title) * 20 // Approximate width for 32pt font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		textWidth := len(label) * 12
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, label, fonts.Bold.Get(), x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select"
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, fonts.Small.Get(), hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		return "Play"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuExit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
