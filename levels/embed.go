package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/milk9111/m3g/level"
)

//go:embed *.json
var LevelsFS embed.FS

// LoadLevelFromFS decodes an embedded level. A missing .json extension is
// added.
func LoadLevelFromFS(name string, r level.Resolver) (*level.Grid, error) {
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	g, err := level.Decode(data, r)
	if err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}
	return g, nil
}

// Names lists the embedded level files.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
