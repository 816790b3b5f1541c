package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Points int
}

var Score = donburi.NewComponentType[ScoreData]()
