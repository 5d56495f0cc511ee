// Package renderer draws the world grid with raylib.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bugworld/camera"
)

// WorldRenderer blits the grid's color buffer to the screen through a
// texture with one texel per cell.
type WorldRenderer struct {
	tex        rl.Texture2D
	texW, texH int

	initialized bool
}

// NewWorldRenderer creates a renderer for a gridW x gridH world.
func NewWorldRenderer(gridW, gridH int) *WorldRenderer {
	return &WorldRenderer{texW: gridW, texH: gridH}
}

// Init creates the texture (must be called after raylib window is created).
func (r *WorldRenderer) Init() {
	if r.initialized {
		return
	}
	img := rl.GenImageColor(r.texW, r.texH, rl.Black)
	r.tex = rl.LoadTextureFromImage(img)
	rl.SetTextureFilter(r.tex, rl.FilterPoint)
	rl.SetTextureWrap(r.tex, rl.WrapRepeat)
	rl.UnloadImage(img)
	r.initialized = true
}

// Update uploads the row-major cell colors.
func (r *WorldRenderer) Update(pixels []color.RGBA) {
	if !r.initialized {
		r.Init()
	}
	if len(pixels) != r.texW*r.texH {
		return
	}
	rl.UpdateTexture(r.tex, pixels)
}

// Draw renders the part of the world the camera sees. A view across the
// seam samples past the texture edge and repeats.
func (r *WorldRenderer) Draw(cam *camera.Camera) {
	if !r.initialized {
		return
	}
	s, d := cam.Source(), cam.Dest()
	src := rl.Rectangle{X: s.X, Y: s.Y, Width: s.W, Height: s.H}
	dst := rl.Rectangle{X: d.X, Y: d.Y, Width: d.W, Height: d.H}
	rl.DrawTexturePro(r.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (r *WorldRenderer) Unload() {
	if !r.initialized {
		return
	}
	rl.UnloadTexture(r.tex)
	r.initialized = false
}
