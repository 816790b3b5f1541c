package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/superbros/assets"
	cfg "github.com/automoto/superbros/config"
	"github.com/automoto/superbros/session"
	"github.com/automoto/superbros/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldScene plays the game in a window.
type WorldScene struct {
	session      *session.Session
	sceneChanger SceneChanger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.session == nil {
		return
	}
	e := ws.session.ECS()

	systems.UpdateActions(e)

	if systems.GetAction(e, cfg.ActionPause).JustPressed {
		ws.session.TogglePause()
	}
	if systems.GetAction(e, cfg.ActionDebug).JustPressed {
		systems.ToggleDebug(e)
	}
	if ws.session.Paused() && systems.GetAction(e, cfg.ActionMenuSelect).JustPressed {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	ws.session.Step(systems.SampleInput(e))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.session == nil {
		return
	}
	ws.session.ECS().Draw(screen)
}

func (ws *WorldScene) configure() {
	levels, err := assets.LoadWorlds()
	if err != nil {
		log.Printf("Failed to load worlds: %v", err)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	s, err := session.New(levels)
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	e := s.ECS()
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawBanner)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.session = s
}
