package inspector

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Widget colors
var (
	ColorBarBg   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow  = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText    = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorBoolOn  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	ColorBoolOff = rl.Color{R: 80, G: 80, B: 80, A: 255}
)

// Row heights returned by the draw functions.
const (
	labelHeight = 20
	barHeight   = 18
)

// DrawLabel renders a text value.
func DrawLabel(x, y int32, name string, value any, options map[string]string) int32 {
	text := FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 14, ColorText)
	return labelHeight
}

// DrawBar renders a horizontal bar scaled by the max option, followed by
// the value text.
func DrawBar(x, y int32, name string, value float32, text string, options map[string]string) int32 {
	ratio := value / GetMax(options)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	const barWidth, barH = int32(120), int32(14)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 90
	rl.DrawRectangle(barX, y, barWidth, barH, ColorBarBg)

	fill := ColorBarFill
	if ratio < 0.3 {
		fill = ColorBarLow
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*ratio), barH, fill)

	rl.DrawText(text, barX+barWidth+5, y, 14, ColorTextDim)
	return barHeight
}

// DrawBool renders a yes/no indicator.
func DrawBool(x, y int32, name string, value bool) int32 {
	rl.DrawText(name, x, y, 14, ColorTextDim)

	const size = int32(14)
	indicatorX := x + 90

	color, text := ColorBoolOff, "no"
	if value {
		color, text = ColorBoolOn, "yes"
	}
	rl.DrawRectangle(indicatorX, y, size, size, color)
	rl.DrawText(text, indicatorX+size+5, y, 14, color)
	return barHeight
}

// DrawField renders a field using its widget type and returns its height.
func DrawField(x, y int32, field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if v, ok := GetFloatValue(field.Value); ok {
			return DrawBar(x, y, field.Name, v, FormatValue(field.Value, field.Options["fmt"]), field.Options)
		}
	case WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return DrawBool(x, y, field.Name, v)
		}
	}
	return DrawLabel(x, y, field.Name, field.Value, field.Options)
}

// FieldHeight returns the height DrawField will use.
func FieldHeight(field Field) int32 {
	switch field.Widget {
	case WidgetBar:
		if _, ok := GetFloatValue(field.Value); ok {
			return barHeight
		}
	case WidgetBool:
		if _, ok := field.Value.(bool); ok {
			return barHeight
		}
	}
	return labelHeight
}
