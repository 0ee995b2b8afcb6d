package editor

import (
	"path/filepath"
	"strings"
)

// LevelsDir is where bare file names are saved.
const LevelsDir = "levels"

// SavePath turns the File field into a path. Bare names go to LevelsDir and
// get a .json extension when they have none. An empty name yields "".
func SavePath(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	if filepath.Dir(name) == "." {
		return filepath.Join(LevelsDir, name)
	}
	return filepath.Clean(name)
}
