// Package screen keeps track of what is painted on the terminal and turns
// freshly produced frames into the minimal list of cell updates.
package screen

import (
	"fmt"

	"termpix/device"
	"termpix/frame"
	"termpix/geometry"
)

// Cache remembers the last painted pixel of every location it has seen.
// It lives for one rendering session and is not safe for concurrent use.
type Cache struct {
	painted map[geometry.Location]frame.Pixel
}

func NewCache() *Cache {
	return &Cache{painted: map[geometry.Location]frame.Pixel{}}
}

// Diff returns the cells of f that differ from the cache, in frame order,
// and records them as painted. Locations absent from f are left untouched.
// Callers invalidate the cache when painting the updates fails.
func (c *Cache) Diff(f frame.Frame) []frame.Cell {
	var updates []frame.Cell
	for _, cell := range f {
		if painted, ok := c.painted[cell.At]; ok && painted == cell.Pixel {
			continue
		}
		c.painted[cell.At] = cell.Pixel
		updates = append(updates, cell)
	}
	return updates
}

func (c *Cache) Get(loc geometry.Location) (frame.Pixel, bool) {
	pixel, ok := c.painted[loc]
	return pixel, ok
}

func (c *Cache) Len() int {
	return len(c.painted)
}

// Invalidate forgets every painted cell so the next frame repaints in full.
func (c *Cache) Invalidate() {
	clear(c.painted)
}

// Paint writes updates in order and flushes the writer.
func Paint(w device.Writer, updates []frame.Cell) error {
	for _, cell := range updates {
		if err := w.Write(cell.At, cell.Glyph, cell.Style); err != nil {
			return fmt.Errorf("write %s: %w", cell.At, err)
		}
	}
	return w.Flush()
}
