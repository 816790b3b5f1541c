package components

import "github.com/yohamta/donburi"

type PowerUpKind int

const (
	PowerUpMushroom PowerUpKind = iota
	PowerUpStar
)

func (k PowerUpKind) String() string {
	if k == PowerUpStar {
		return "star"
	}
	return "mushroom"
}

type PowerUpData struct {
	Kind      PowerUpKind
	Collected bool
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
