// Package core holds the frontend-neutral pieces shared by the game and its
// frontends: input actions, game state and events, colors, the character
// screen buffer and clocks. It does not import Bubble Tea or Ebitengine.
package core

// Rect is a cell area on a Screen. Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle at (x, y) of size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle centered in an outerW x outerH area.
// The origin never goes negative when the area is too small.
func CenteredRect(outerW, outerH, w, h int) Rect {
	return NewRect(max(0, (outerW-w)/2), max(0, (outerH-h)/2), w, h)
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) is inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
