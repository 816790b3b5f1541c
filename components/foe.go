package components

import "github.com/yohamta/donburi"

// FoeVariant selects the patrol and stomp rules of a foe.
type FoeVariant int

const (
	VariantEnemy FoeVariant = iota
	VariantMiniBoss
	VariantBoss
)

func (v FoeVariant) String() string {
	switch v {
	case VariantEnemy:
		return "enemy"
	case VariantMiniBoss:
		return "miniboss"
	case VariantBoss:
		return "boss"
	}
	return "unknown"
}

type FoeData struct {
	Variant FoeVariant
	Kind    string // config.Foes key
	Alive   bool
}

var Foe = donburi.NewComponentType[FoeData]()
