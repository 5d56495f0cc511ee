package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the status bar.
type HUDData struct {
	Alive        int
	Tick         uint64
	Paused       bool
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
}

// StatusBarHeight is the strip reserved under the world view.
const StatusBarHeight = 30

// StatusLine formats the population and tick counter.
func StatusLine(alive int, tick uint64) string {
	return fmt.Sprintf("BUGS: %6d\tFrame: %8d", alive, tick)
}

// HUD renders the status bar along the bottom of the screen.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the status bar. Returns true if the pause button was clicked.
func (h *HUD) Draw(data HUDData) bool {
	t := h.renderer.Theme
	y := data.ScreenHeight - StatusBarHeight

	rl.DrawRectangle(0, y, data.ScreenWidth, StatusBarHeight, t.PanelBg)
	rl.DrawText(StatusLine(data.Alive, data.Tick), 10, data.ScreenHeight-23, t.StatusFontSize, t.StatusColor)

	label := "Pause"
	if data.Paused {
		label = "Resume"
		rl.DrawText("PAUSED", data.ScreenWidth-220, data.ScreenHeight-23, t.StatusFontSize, rl.Yellow)
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", data.FPS), data.ScreenWidth-330, data.ScreenHeight-20, 14, rl.Gray)

	btn := rl.Rectangle{X: float32(data.ScreenWidth - 110), Y: float32(y + 3), Width: 100, Height: StatusBarHeight - 6}
	return gui.Button(btn, label)
}

// DrawControls renders the control legend above the status bar.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-StatusBarHeight-20, 14, rl.Gray)
}
