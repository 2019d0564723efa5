package geometry

import (
	"fmt"
	"log"
	"math"
)

// Location is a 1-based terminal cell address: X grows rightward, Y downward.
type Location struct {
	X, Y int
}

type Size struct {
	Width, Height int
}

// Geometry is implemented by anything that occupies a rectangle on the screen.
type Geometry interface {
	Position() Location
	Size() Size
}

// Rect is the closed region from Position to Position+Size.
// A Rect of Size{w, h} covers (w+1)*(h+1) cells.
type Rect struct {
	Pos Location
	Dim Size
}

func NewRect(pos Location, size Size) Rect {
	return Rect{Pos: pos, Dim: size}
}

// RectOf validates and returns the rectangle occupied by g.
func RectOf(g Geometry) Rect {
	r := Rect{Pos: g.Position(), Dim: g.Size()}
	r.Validate()
	return r
}

// Screen returns the rectangle covering a terminal of cols by rows cells.
func Screen(terminal Size) Rect {
	return Rect{
		Pos: Location{X: 1, Y: 1},
		Dim: Size{Width: max(terminal.Width-1, 0), Height: max(terminal.Height-1, 0)},
	}
}

func (r Rect) Position() Location { return r.Pos }
func (r Rect) Size() Size         { return r.Dim }

// Validate panics when the rectangle cannot be addressed on a terminal.
func (r Rect) Validate() {
	if r.Dim.Width < 0 || r.Dim.Height < 0 {
		log.Panicf("### negative size: %s", r)
	}
	if r.Pos.X < 1 || r.Pos.Y < 1 {
		log.Panicf("### position outside of the terminal: %s", r)
	}
	if r.Pos.X > math.MaxInt-r.Dim.Width || r.Pos.Y > math.MaxInt-r.Dim.Height {
		log.Panicf("### size overflows position: %s", r)
	}
}

func (r Rect) TopLeft() Location {
	return r.Pos
}

func (r Rect) BottomRight() Location {
	return Location{X: r.Pos.X + r.Dim.Width, Y: r.Pos.Y + r.Dim.Height}
}

func (r Rect) TopRight() Location {
	return Location{X: r.Pos.X + r.Dim.Width, Y: r.Pos.Y}
}

func (r Rect) BottomLeft() Location {
	return Location{X: r.Pos.X, Y: r.Pos.Y + r.Dim.Height}
}

func (r Rect) Center() Location {
	return Location{X: r.Pos.X + r.Dim.Width/2, Y: r.Pos.Y + r.Dim.Height/2}
}

// HCenter returns the center column on row y.
func (r Rect) HCenter(y int) Location {
	return Location{X: r.Center().X, Y: y}
}

// VCenter returns the center row on column x.
func (r Rect) VCenter(x int) Location {
	return Location{X: x, Y: r.Center().Y}
}

func (r Rect) IsLeftBoundary(loc Location) bool {
	return loc.X == r.Pos.X
}

func (r Rect) IsRightBoundary(loc Location) bool {
	return loc.X == r.Pos.X+r.Dim.Width
}

func (r Rect) IsTopBoundary(loc Location) bool {
	return loc.Y == r.Pos.Y
}

func (r Rect) IsBottomBoundary(loc Location) bool {
	return loc.Y == r.Pos.Y+r.Dim.Height
}

// IsBoundary reports whether loc lies on any of the four edge lines.
// It does not check that loc is inside the rectangle.
func (r Rect) IsBoundary(loc Location) bool {
	return r.IsLeftBoundary(loc) || r.IsRightBoundary(loc) || r.IsTopBoundary(loc) || r.IsBottomBoundary(loc)
}

func (r Rect) IsTopLeftCorner(loc Location) bool     { return loc == r.TopLeft() }
func (r Rect) IsTopRightCorner(loc Location) bool    { return loc == r.TopRight() }
func (r Rect) IsBottomLeftCorner(loc Location) bool  { return loc == r.BottomLeft() }
func (r Rect) IsBottomRightCorner(loc Location) bool { return loc == r.BottomRight() }

func (r Rect) IsCorner(loc Location) bool {
	return r.IsTopLeftCorner(loc) || r.IsTopRightCorner(loc) ||
		r.IsBottomLeftCorner(loc) || r.IsBottomRightCorner(loc)
}

func (r Rect) Covers(loc Location) bool {
	br := r.BottomRight()
	return r.Pos.X <= loc.X && loc.X <= br.X && r.Pos.Y <= loc.Y && loc.Y <= br.Y
}

func (r Rect) CanContain(other Geometry) bool {
	o := Rect{Pos: other.Position(), Dim: other.Size()}
	return r.Covers(o.TopLeft()) && r.Covers(o.BottomRight())
}

// Area is the number of cells the rectangle covers.
func (r Rect) Area() int {
	return (r.Dim.Width + 1) * (r.Dim.Height + 1)
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) (Rect, bool) {
	w, h := r.Dim.Width-2*n, r.Dim.Height-2*n
	if n < 0 || w < 0 || h < 0 {
		return Rect{}, false
	}
	return Rect{Pos: Location{X: r.Pos.X + n, Y: r.Pos.Y + n}, Dim: Size{Width: w, Height: h}}, true
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("Size(Width: %d, Height: %d)", s.Width, s.Height)
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%s, %s)", r.Pos, r.Dim)
}
