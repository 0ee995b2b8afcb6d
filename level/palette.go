package level

import "fmt"

// Palette is the editor's row of tile slots plus the active slot. Slots may
// be empty; -1 means nothing is selected.
type Palette struct {
	slots    []*Tile
	selected int
}

func NewPalette() *Palette {
	return &Palette{selected: -1}
}

func (p *Palette) Len() int { return len(p.slots) }

// AddSlot appends an empty slot and returns its index.
func (p *Palette) AddSlot() int {
	p.slots = append(p.slots, nil)
	return len(p.slots) - 1
}

func (p *Palette) checkSlot(i int) error {
	if i < 0 || i >= len(p.slots) {
		return fmt.Errorf("%w: %d of %d", ErrSlotOutOfRange, i, len(p.slots))
	}
	return nil
}

// Assign puts t into slot i, replacing whatever was there.
func (p *Palette) Assign(i int, t *Tile) error {
	if err := p.checkSlot(i); err != nil {
		return err
	}
	p.slots[i] = t
	return nil
}

func (p *Palette) Slot(i int) (*Tile, error) {
	if err := p.checkSlot(i); err != nil {
		return nil, err
	}
	return p.slots[i], nil
}

// Slots returns a copy of the slot contents.
func (p *Palette) Slots() []*Tile {
	out := make([]*Tile, len(p.slots))
	copy(out, p.slots)
	return out
}

func (p *Palette) Select(i int) error {
	if err := p.checkSlot(i); err != nil {
		return err
	}
	p.selected = i
	return nil
}

func (p *Palette) Deselect() { p.selected = -1 }

// Selected returns the tile in the active slot and its index. The tile is nil
// when no slot is active or the active slot is empty.
func (p *Palette) Selected() (*Tile, int) {
	if p.selected < 0 || p.selected >= len(p.slots) {
		return nil, -1
	}
	return p.slots[p.selected], p.selected
}

// RemoveSlot deletes slot i and keeps the selection on the same slot when it
// survives.
func (p *Palette) RemoveSlot(i int) error {
	if err := p.checkSlot(i); err != nil {
		return err
	}
	p.slots = append(p.slots[:i], p.slots[i+1:]...)
	switch {
	case p.selected == i:
		p.selected = -1
	case p.selected > i:
		p.selected--
	}
	return nil
}
