package level

import (
	"fmt"
	"strings"
)

// Kind classifies what a tile does on the board.
type Kind int

const (
	KindEmpty Kind = iota
	KindNormal
	KindObstacle
)

var kindNames = []string{
	KindEmpty:    "empty",
	KindNormal:   "normal",
	KindObstacle: "obstacle",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind accepts the lower-case kind names, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return KindEmpty, fmt.Errorf("level: unknown tile kind %q", s)
}

// Sprite points at a region of an image file. A zero W or H selects the
// whole image.
type Sprite struct {
	Path string
	X    int
	Y    int
	W    int
	H    int
}

// Tile is a catalog entry. Grids hold references to tiles and never copy them.
type Tile struct {
	ID     string
	Kind   Kind
	Visual Sprite
}

func (t *Tile) String() string {
	if t == nil {
		return "<empty>"
	}
	return t.ID
}
