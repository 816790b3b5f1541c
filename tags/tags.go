package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	MiniBoss = donburi.NewTag().SetName("MiniBoss")
	Boss     = donburi.NewTag().SetName("Boss")
	PowerUp  = donburi.NewTag().SetName("PowerUp")
)

// Resolv tags for objects in a world space
const (
	ResolvSolid   = "solid"
	ResolvSpecial = "special"
	ResolvSecret  = "secret"
	ResolvPlayer  = "Player"
	ResolvFoe     = "Foe"
	ResolvPowerUp = "PowerUp"
)
