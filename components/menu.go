package components

import "github.com/yohamta/donburi"

// MainMenuOption represents items in the title menu
type MainMenuOption int

const (
	MainMenuPlay MainMenuOption = iota
	MainMenuExit
)

type MenuData struct {
	SelectedIndex int
	Options       []MainMenuOption
}

var Menu = donburi.NewComponentType[MenuData]()
