package tiles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/milk9111/m3g/level"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML form of one tile definition.
type Spec struct {
	ID     string     `yaml:"id"`
	Kind   string     `yaml:"kind"`
	Sprite SpriteSpec `yaml:"sprite"`
}

type SpriteSpec struct {
	Path string `yaml:"path"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
}

// ParseSpec decodes a tile file. name is the file name; its base name
// without extension is the ID when the file does not set one.
func ParseSpec(name string, data []byte) (*level.Tile, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("tiles: unmarshal %s: %w", name, err)
	}
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		base := filepath.Base(filepath.ToSlash(name))
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if id == "" || id == "." {
		return nil, fmt.Errorf("tiles: %s: missing id", name)
	}
	kind := level.KindNormal
	if spec.Kind != "" {
		k, err := level.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("tiles: %s: %w", name, err)
		}
		kind = k
	}
	if spec.Sprite.W < 0 || spec.Sprite.H < 0 {
		return nil, fmt.Errorf("tiles: %s: negative sprite size", name)
	}
	return &level.Tile{
		ID:   id,
		Kind: kind,
		Visual: level.Sprite{
			Path: spec.Sprite.Path,
			X:    spec.Sprite.X,
			Y:    spec.Sprite.Y,
			W:    spec.Sprite.W,
			H:    spec.Sprite.H,
		},
	}, nil
}

// IsSpecFile reports whether path has a tile file extension.
func IsSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
