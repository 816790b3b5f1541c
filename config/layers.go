package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer every renderer draws on.
const Default ecs.LayerID = iota
