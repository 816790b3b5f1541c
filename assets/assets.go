package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/superbros/shared/leveldata"
)

// LevelsDir is the directory of world files inside the embedded FS.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadWorlds parses every embedded world, ordered by file name.
func LoadWorlds() ([]*leveldata.Level, error) {
	levels, err := leveldata.LoadAllLevels(assetFS, LevelsDir)
	if err != nil {
		return nil, fmt.Errorf("load embedded worlds: %w", err)
	}
	return levels, nil
}
