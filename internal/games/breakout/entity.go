// Package breakout implements an Arkanoid-style brick breaker: one paddle,
// one ball and a grid of single-hit blocks inside a rectangular boundary.
//
// Simulation runs in board units (the default board is 700x500) with float
// coordinates. The platform layer scales the board down to terminal cells.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Rect is an axis-aligned rectangle in board units.
// Its size never changes after creation; only the position moves.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// SetLeft moves the rectangle so its left edge is at x.
func (r *Rect) SetLeft(x float64) { r.X = x }

// SetRight moves the rectangle so its right edge is at x.
func (r *Rect) SetRight(x float64) { r.X = x - r.W }

// SetTop moves the rectangle so its top edge is at y.
func (r *Rect) SetTop(y float64) { r.Y = y }

// SetBottom moves the rectangle so its bottom edge is at y.
func (r *Rect) SetBottom(y float64) { r.Y = y - r.H }

// SetCenterX moves the rectangle so it is horizontally centered on x.
func (r *Rect) SetCenterX(x float64) { r.X = x - r.W/2 }

// Move shifts the rectangle by (dx, dy).
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Intersects reports whether two rectangles overlap.
// Intervals are half-open: rectangles that only share an edge do not overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Velocity is a displacement per tick in board units.
type Velocity struct {
	DX, DY float64
}

// Scale returns the velocity multiplied by f on both axes.
func (v Velocity) Scale(f float64) Velocity {
	return Velocity{DX: v.DX * f, DY: v.DY * f}
}

// Magnitude returns the length of the velocity vector.
func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.DX, v.DY)
}

// IsZero reports whether both components are zero.
func (v Velocity) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Bounded is anything that occupies a rectangle on the board.
type Bounded interface {
	Bounds() Rect
}

// Colliding reports whether two entities overlap.
func Colliding(a, b Bounded) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// Block is a destroyable brick. Row and Color are cosmetic.
type Block struct {
	Rect      Rect
	Row       int
	Color     core.Color
	Destroyed bool
}

// Bounds returns the block rectangle.
func (b *Block) Bounds() Rect { return b.Rect }

// Paddle is the player's platform. It only moves horizontally, so it carries
// a signed horizontal speed and nothing else.
type Paddle struct {
	Rect  Rect
	Speed float64 // Signed X displacement per move
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() Rect { return p.Rect }

// Move shifts the paddle by its speed along X.
func (p *Paddle) Move() {
	p.Rect.X += p.Speed
}

// Ball moves freely in two dimensions.
type Ball struct {
	Rect     Rect
	Velocity Velocity
}

// Bounds returns the ball rectangle.
func (b *Ball) Bounds() Rect { return b.Rect }

// PlaceOn puts the ball flush on top of the paddle, horizontally centered.
func (b *Ball) PlaceOn(p *Paddle) {
	b.Rect.SetBottom(p.Rect.Top())
	b.Rect.SetCenterX(p.Rect.CenterX())
}
