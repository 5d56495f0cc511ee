// Package inspector shows the record of a clicked organism.
package inspector

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bugworld/camera"
	"github.com/pthm-cable/bugworld/components"
	"github.com/pthm-cable/bugworld/sim"
)

// Panel dimensions
const (
	PanelWidth   = 300
	PanelPadding = 10
	HeaderHeight = 30
	sectionGap   = 26
)

// Panel colors
var (
	ColorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	ColorPanelHeader = rl.Color{R: 45, G: 45, B: 55, A: 255}
	ColorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	ColorHeaderText  = rl.Color{R: 255, G: 255, B: 255, A: 255}
	ColorCloseBtn    = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorSection     = rl.Color{R: 50, G: 50, B: 60, A: 255}
	ColorSectionText = rl.Color{R: 200, G: 200, B: 220, A: 255}
	ColorSelection   = rl.Color{R: 255, G: 255, B: 0, A: 255}
)

// Inspector tracks the selected organism and renders its panel.
// The selection is a slot id checked against the store on every use.
type Inspector struct {
	selected    components.OrganismID
	hasSelected bool

	panelX, panelY int32
	lastHeight     int32
}

// NewInspector creates an inspector docked to the right edge.
func NewInspector(screenWidth int32) *Inspector {
	ins := &Inspector{panelY: 10}
	ins.Resize(screenWidth)
	return ins
}

// Resize re-docks the panel.
func (ins *Inspector) Resize(screenWidth int32) {
	ins.panelX = screenWidth - PanelWidth - 10
}

// HandleInput selects the organism under a left click and clears the
// selection on a right click. Clicks on the panel itself are ignored.
func (ins *Inspector) HandleInput(mouseX, mouseY float32, cam *camera.Camera, s *sim.Simulation) {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		ins.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mx, my := int32(mouseX), int32(mouseY)
	if ins.hasSelected {
		closeX, closeY := ins.panelX+PanelWidth-25, ins.panelY+5
		if mx >= closeX && mx <= closeX+20 && my >= closeY && my <= closeY+20 {
			ins.Deselect()
			return
		}
		if mx >= ins.panelX && mx <= ins.panelX+PanelWidth &&
			my >= ins.panelY && my <= ins.panelY+ins.lastHeight {
			return
		}
	}

	x, y, ok := cam.CellAt(mouseX, mouseY)
	if !ok {
		return
	}
	g := s.Grid()
	if id, ok := g.Occupant(g.Index(components.Pos{X: x, Y: y})); ok {
		ins.Select(id)
	}
}

// Select makes id the inspected organism.
func (ins *Inspector) Select(id components.OrganismID) {
	ins.selected = id
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the current selection.
func (ins *Inspector) Selected() (components.OrganismID, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the panel. A selection whose organism died is dropped.
func (ins *Inspector) Draw(s *sim.Simulation) {
	if !ins.hasSelected {
		return
	}
	v, ok := Describe(s, ins.selected)
	if !ok {
		ins.Deselect()
		return
	}
	identity, genes, senses := traitFields(v)

	height := int32(HeaderHeight + PanelPadding*2 + sectionGap*2)
	for _, group := range [][]Field{identity, genes, senses} {
		for _, f := range group {
			height += FieldHeight(f)
		}
	}
	ins.lastHeight = height

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, height, ColorPanelBg)
	rl.DrawRectangleLinesEx(
		rl.Rectangle{X: float32(ins.panelX), Y: float32(ins.panelY), Width: PanelWidth, Height: float32(height)},
		1,
		ColorPanelBorder,
	)

	rl.DrawRectangle(ins.panelX, ins.panelY, PanelWidth, HeaderHeight, ColorPanelHeader)
	rl.DrawText("INSPECTOR", ins.panelX+PanelPadding, ins.panelY+7, 16, ColorHeaderText)

	closeX, closeY := ins.panelX+PanelWidth-25, ins.panelY+5
	rl.DrawRectangle(closeX, closeY, 20, 20, ColorCloseBtn)
	rl.DrawText("X", closeX+6, closeY+3, 14, rl.White)

	x := ins.panelX + PanelPadding
	y := ins.panelY + HeaderHeight + PanelPadding
	for _, f := range identity {
		y += DrawField(x, y, f)
	}

	ins.drawSectionHeader(x, y+4, "TRAITS")
	y += sectionGap
	for _, f := range genes {
		y += DrawField(x, y, f)
	}

	ins.drawSectionHeader(x, y+4, "FORAGING")
	y += sectionGap
	for _, f := range senses {
		y += DrawField(x, y, f)
	}
}

// DrawSelection outlines the selected organism's cell.
func (ins *Inspector) DrawSelection(cam *camera.Camera, s *sim.Simulation) {
	if !ins.hasSelected {
		return
	}
	o, ok := s.Store().Get(ins.selected)
	if !ok {
		return
	}
	sx, sy := cam.WorldToScreen(float32(o.Pos.X), float32(o.Pos.Y))
	size := cam.Zoom
	if size < 3 {
		size = 3
	}
	rl.DrawRectangleLinesEx(rl.Rectangle{X: sx - 1, Y: sy - 1, Width: size + 2, Height: size + 2}, 1, ColorSelection)
}

func (ins *Inspector) drawSectionHeader(x, y int32, title string) {
	rl.DrawRectangle(x-2, y-2, PanelWidth-2*PanelPadding+4, 18, ColorSection)
	rl.DrawText(title, x+2, y, 14, ColorSectionText)
}
