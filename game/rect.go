// File: game/rect.go
package game

// Rect is an axis-aligned box in screen coordinates, origin at the top-left.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Intersects reports whether r and other overlap. Boxes that only share an
// edge do not intersect, and empty boxes never do.
func (r Rect) Intersects(other Rect) bool {
	if r.Width <= 0 || r.Height <= 0 || other.Width <= 0 || other.Height <= 0 {
		return false
	}
	return r.X < other.Right() &&
		other.X < r.Right() &&
		r.Y < other.Bottom() &&
		other.Y < r.Bottom()
}
