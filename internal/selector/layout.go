package selector

import (
	"fmt"

	"xkcdget/internal/domain"
)

// Window is the byte range of the derived key assigned to one slot.
type Window struct {
	Offset int
	Width  int
}

// Layout assigns disjoint, consecutive windows to slots.
type Layout []Window

// NewLayout builds a layout from per-slot window widths.
func NewLayout(widths ...int) Layout {
	l := make(Layout, len(widths))
	off := 0
	for i, w := range widths {
		l[i] = Window{Offset: off, Width: w}
		off += w
	}
	return l
}

// Size returns the number of key bytes the layout consumes.
func (l Layout) Size() int {
	if len(l) == 0 {
		return 0
	}
	last := l[len(l)-1]
	return last.Offset + last.Width
}

// Slice returns the window of key for slot.
func (l Layout) Slice(key []byte, slot int) ([]byte, error) {
	if slot < 0 || slot >= len(l) {
		return nil, fmt.Errorf("%w: slot %d outside layout of %d", domain.ErrInvariant, slot, len(l))
	}
	w := l[slot]
	if w.Offset+w.Width > len(key) {
		return nil, fmt.Errorf("%w: slot %d window [%d,%d) overruns %d-byte key",
			domain.ErrInvariant, slot, w.Offset, w.Offset+w.Width, len(key))
	}
	return key[w.Offset : w.Offset+w.Width], nil
}
