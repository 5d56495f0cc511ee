// Package camera maps between screen pixels and world cells for the
// toroidal grid view.
package camera

import "math"

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Camera controls the viewport into the world.
// Supports pan and zoom with toroidal world wrapping.
type Camera struct {
	// Center of the view in cell coordinates
	X, Y float32

	// Screen pixels per cell
	Zoom float32

	// Viewport dimensions in pixels
	ViewportW, ViewportH float32

	// World dimensions in cells
	WorldW, WorldH float32

	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world with the whole world in view.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		WorldW:    worldW,
		WorldH:    worldH,
		MaxZoom:   32,
	}
	c.MinZoom = c.fitZoom()
	c.Reset()
	return c
}

// fitZoom is the largest zoom that shows the whole world. Zooms of at least
// one pixel per cell are floored so cells stay square.
func (c *Camera) fitZoom() float32 {
	z := c.ViewportW / c.WorldW
	if zy := c.ViewportH / c.WorldH; zy < z {
		z = zy
	}
	if z >= 1 {
		z = float32(math.Floor(float64(z)))
	}
	return z
}

// WorldToScreen converts cell coordinates to screen coordinates, taking the
// shortest way around the torus from the camera center.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	dx := toroidalDelta(wx, c.X, c.WorldW)
	dy := toroidalDelta(wy, c.Y, c.WorldH)
	return c.ViewportW/2 + dx*c.Zoom, c.ViewportH/2 + dy*c.Zoom
}

// ScreenToWorld converts screen coordinates to wrapped cell coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	dx := (sx - c.ViewportW/2) / c.Zoom
	dy := (sy - c.ViewportH/2) / c.Zoom
	return mod(c.X+dx, c.WorldW), mod(c.Y+dy, c.WorldH)
}

// CellAt returns the cell under a screen point. ok is false when the point
// lies outside the drawn world.
func (c *Camera) CellAt(sx, sy float32) (x, y int, ok bool) {
	d := c.Dest()
	if sx < d.X || sx >= d.X+d.W || sy < d.Y || sy >= d.Y+d.H {
		return 0, 0, false
	}
	wx, wy := c.ScreenToWorld(sx, sy)
	x, y = int(wx), int(wy)
	// Float rounding at the seam
	if x >= int(c.WorldW) {
		x = 0
	}
	if y >= int(c.WorldH) {
		y = 0
	}
	return x, y, true
}

// Source returns the visible world area in cells. Its extent never exceeds
// the world, and X or Y may fall outside [0, world) when the view straddles
// the seam; the texture is drawn with repeat wrapping.
func (c *Camera) Source() Rect {
	w := min(c.ViewportW/c.Zoom, c.WorldW)
	h := min(c.ViewportH/c.Zoom, c.WorldH)
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Dest returns the screen rectangle Source maps to, centered in the viewport.
func (c *Camera) Dest() Rect {
	s := c.Source()
	w, h := s.W*c.Zoom, s.H*c.Zoom
	return Rect{X: (c.ViewportW - w) / 2, Y: (c.ViewportH - h) / 2, W: w, H: h}
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = c.fitZoom()
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
}

// Pan moves the camera by the given delta in screen pixels.
// Automatically wraps around world boundaries.
func (c *Camera) Pan(dx, dy float32) {
	c.X = mod(c.X+dx/c.Zoom, c.WorldW)
	c.Y = mod(c.Y+dy/c.Zoom, c.WorldH)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset centers the camera and fits the whole world.
func (c *Camera) Reset() {
	c.X = c.WorldW / 2
	c.Y = c.WorldH / 2
	c.Zoom = c.MinZoom
}

// toroidalDelta computes the shortest signed distance from 'from' to 'to'
// in a toroidal space of the given size.
func toroidalDelta(to, from, size float32) float32 {
	d := to - from
	if d > size/2 {
		d -= size
	} else if d < -size/2 {
		d += size
	}
	return d
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
