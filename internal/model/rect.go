package model

// Rect is a screen rectangle in global pixel coordinates, stored as
// [x, y, width, height] to match the snapshot wire format.
type Rect struct {
	X, Y, W, H int
}

// Left returns the left edge.
func (r Rect) Left() int { return r.X }

// Top returns the top edge.
func (r Rect) Top() int { return r.Y }

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the center point of the rect.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Array returns the rect as [x, y, w, h] for serialization.
func (r Rect) Array() [4]int {
	return [4]int{r.X, r.Y, r.W, r.H}
}

// RectFromArray builds a Rect from a [x, y, w, h] array.
func RectFromArray(a [4]int) Rect {
	return Rect{X: a[0], Y: a[1], W: a[2], H: a[3]}
}
