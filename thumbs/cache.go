// Package thumbs cuts tile sprites out of their atlas images and keeps
// square, fixed-size previews keyed by tile ID.
package thumbs

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/milk9111/m3g/level"
	xdraw "golang.org/x/image/draw"
)

var (
	ErrNoVisual         = errors.New("thumbs: tile has no sprite")
	ErrRegionOutOfAtlas = errors.New("thumbs: sprite region outside atlas")
)

// Loader opens the atlas image at path.
type Loader func(path string) (image.Image, error)

// Cache holds decoded atlases by path and thumbnails by tile ID. It is not
// safe for concurrent use; the editor only touches it from its update loop.
type Cache struct {
	load    Loader
	size    int
	atlases map[string]image.Image
	thumbs  map[string]image.Image
}

// NewCache returns a cache producing size x size thumbnails. A nil loader
// decodes images from disk.
func NewCache(load Loader, size int) *Cache {
	if load == nil {
		load = LoadFile
	}
	if size <= 0 {
		size = 32
	}
	return &Cache{
		load:    load,
		size:    size,
		atlases: make(map[string]image.Image),
		thumbs:  make(map[string]image.Image),
	}
}

func (c *Cache) Size() int { return c.size }
func (c *Cache) Len() int  { return len(c.thumbs) }

// Thumbnail returns the cached preview for t, building it on first use.
func (c *Cache) Thumbnail(t *level.Tile) (image.Image, error) {
	if t == nil || t.Visual.Path == "" {
		return nil, ErrNoVisual
	}
	if img, ok := c.thumbs[t.ID]; ok {
		return img, nil
	}
	atlas, err := c.atlas(t.Visual.Path)
	if err != nil {
		return nil, err
	}
	region, err := spriteRegion(atlas.Bounds(), t.Visual)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", t.ID, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.size, c.size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), atlas, region, xdraw.Src, nil)
	c.thumbs[t.ID] = dst
	return dst, nil
}

// Invalidate forgets the thumbnail for id and the atlas it was cut from, so
// edited tile definitions and images are picked up again.
func (c *Cache) Invalidate(id string, atlasPath string) {
	delete(c.thumbs, id)
	if atlasPath != "" {
		delete(c.atlases, atlasPath)
	}
}

func (c *Cache) atlas(path string) (image.Image, error) {
	if img, ok := c.atlases[path]; ok {
		return img, nil
	}
	img, err := c.load(path)
	if err != nil {
		return nil, fmt.Errorf("thumbs: load atlas %s: %w", path, err)
	}
	c.atlases[path] = img
	return img, nil
}

// spriteRegion resolves s against the atlas bounds. Sprite coordinates are
// relative to the atlas origin.
func spriteRegion(bounds image.Rectangle, s level.Sprite) (image.Rectangle, error) {
	if s.W == 0 || s.H == 0 {
		return bounds, nil
	}
	r := image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H).Add(bounds.Min)
	if s.X < 0 || s.Y < 0 || !r.In(bounds) {
		return image.Rectangle{}, fmt.Errorf("%w: %v not in %v", ErrRegionOutOfAtlas, r, bounds)
	}
	return r, nil
}

// LoadFile decodes a PNG from disk.
func LoadFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}
