package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed        float64
	JumpStrength float64 // negative, applied as an upward velocity
	Gravity      float64

	// Dimensions
	Width       float64
	Height      float64
	GrownHeight float64

	// Spawn used when a world does not define one
	SpawnX float64
	SpawnY float64

	Color color.RGBA
}

// FoeTypeConfig contains configuration for a specific enemy kind
type FoeTypeConfig struct {
	Name   string
	Speed  float64
	Health int // 0 means a single stomp kills

	Width  float64
	Height float64

	Color color.RGBA
}

// PowerUpConfig contains configuration for power-up pickups
type PowerUpConfig struct {
	Size         float64
	StarDuration time.Duration

	MushroomColor color.RGBA
	StarColor     color.RGBA
}

// ScoreConfig contains the points awarded for gameplay events
type ScoreConfig struct {
	EnemyStomp     int
	BossHit        int
	MiniBossDefeat int
	BossDefeat     int
	PowerUp        int
	Secret         int
}

// TileConfig contains tile colors
type TileConfig struct {
	SolidColor         color.RGBA
	SpecialGroundColor color.RGBA
	SecretColor        color.RGBA
	BackgroundColor    color.RGBA
}

// CameraConfig contains camera follow behavior
type CameraConfig struct {
	Smoothing float64
}

// BannerConfig contains the world title banner
type BannerConfig struct {
	Duration  float32 // seconds
	TextColor color.RGBA
	Y         int
}

// HUDConfig contains HUD layout
type HUDConfig struct {
	ScoreX, ScoreY int
	WorldX, WorldY int
	TextColor      color.RGBA
	DebugColor     color.RGBA
}

// MenuConfig contains main menu layout
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// PauseConfig contains the pause overlay
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
}

// Config is the screen and simulation configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Blink period for the invincible player, in frames
const InvincibleBlinkFrames = 6

var (
	C        *Config
	Player   PlayerConfig
	Foes     map[string]FoeTypeConfig
	PowerUps PowerUpConfig
	Score    ScoreConfig
	Tiles    TileConfig
	Camera   CameraConfig
	Banner   BannerConfig
	HUD      HUDConfig
	Menu     MenuConfig
	Pause    PauseConfig
)

// Foe kinds as named in level files
const (
	FoeGoomba   = "goomba"
	FoeTurtle   = "turtle"
	FoeMiniBoss = "miniboss"
	FoeBoss     = "boss"
)

func init() {
	C = &Config{
		Width:  800,
		Height: 400,
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:        2,
		JumpStrength: -10,
		Gravity:      0.5,

		Width:       16,
		Height:      16,
		GrownHeight: 24,

		SpawnX: 50,
		SpawnY: 50,

		Color: color.RGBA{R: 255, A: 255},
	}

	Foes = map[string]FoeTypeConfig{
		FoeGoomba: {
			Name:   "Goomba",
			Speed:  0.5,
			Width:  16,
			Height: 16,
			Color:  color.RGBA{R: 165, G: 42, B: 42, A: 255},
		},
		FoeTurtle: {
			Name:   "Turtle",
			Speed:  0.3,
			Width:  16,
			Height: 16,
			Color:  color.RGBA{G: 128, A: 255},
		},
		FoeMiniBoss: {
			Name:   "Mini Boss",
			Speed:  0.5,
			Health: 3,
			Width:  32,
			Height: 32,
			Color:  color.RGBA{R: 128, B: 128, A: 255},
		},
		FoeBoss: {
			Name:   "Boss",
			Speed:  1,
			Health: 10,
			Width:  48,
			Height: 48,
			Color:  color.RGBA{A: 255},
		},
	}

	PowerUps = PowerUpConfig{
		Size:          12,
		StarDuration:  5 * time.Second,
		MushroomColor: color.RGBA{R: 255, G: 165, A: 255},
		StarColor:     color.RGBA{R: 255, G: 255, A: 255},
	}

	Score = ScoreConfig{
		EnemyStomp:     100,
		BossHit:        50,
		MiniBossDefeat: 500,
		BossDefeat:     1000,
		PowerUp:        50,
		Secret:         20,
	}

	Tiles = TileConfig{
		SolidColor:         color.RGBA{R: 0x65, G: 0x43, B: 0x21, A: 255},
		SpecialGroundColor: color.RGBA{R: 0x3c, G: 0x8d, B: 0x2f, A: 255},
		SecretColor:        color.RGBA{G: 255, B: 255, A: 255},
		BackgroundColor:    color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 255},
	}

	Camera = CameraConfig{
		Smoothing: 0.1,
	}

	Banner = BannerConfig{
		Duration:  1.5,
		TextColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Y:         120,
	}

	HUD = HUDConfig{
		ScoreX:     10,
		ScoreY:     20,
		WorldX:     680,
		WorldY:     20,
		TextColor:  color.RGBA{A: 255},
		DebugColor: color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 40, A: 255},
		TitleColor:        color.RGBA{R: 255, G: 200, B: 0, A: 255},
		TextColorNormal:   color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TextColorSelected: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TitleY:            120,
		MenuStartY:        200,
		MenuItemHeight:    24,
		MenuItemGap:       12,
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{A: 160},
		TextColor:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
