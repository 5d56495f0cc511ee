package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bugworld/telemetry"
	"github.com/pthm-cable/bugworld/traits"
)

// StatsPanel shows the population census from the last snapshot.
type StatsPanel struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32
	visible  bool
}

// NewStatsPanel creates a hidden panel. The palette colors label the
// resource counts.
func NewStatsPanel(x, y, width int32, food, poison rl.Color) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		sections: snapshotSections(food, poison),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Toggle switches panel visibility.
func (p *StatsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *StatsPanel) IsVisible() bool {
	return p.visible
}

// Draw renders the panel.
func (p *StatsPanel) Draw(snap telemetry.Snapshot) {
	if !p.visible {
		return
	}
	r := p.renderer
	pad := r.Theme.Padding

	height := pad * 2
	for _, sd := range p.sections {
		height += r.SectionHeight(sd)
	}
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + pad
	for _, sd := range p.sections {
		y = r.DrawSection(p.x+pad, y, sd, snap, p.width-pad*2)
	}
}

func snapshotField(get func(s telemetry.Snapshot) int) func(any) float32 {
	return func(data any) float32 {
		s, ok := data.(telemetry.Snapshot)
		if !ok {
			return 0
		}
		return float32(get(s))
	}
}

func snapshotSections(food, poison rl.Color) []SectionDescriptor {
	return []SectionDescriptor{
		{
			Title: "Population",
			Fields: []FieldDescriptor{
				{Label: "Alive", Widget: WidgetText, Format: "%.0f", Getter: snapshotField(func(s telemetry.Snapshot) int { return s.Alive })},
				{Label: "Food", Widget: WidgetText, Format: "%.0f", Getter: snapshotField(func(s telemetry.Snapshot) int { return s.Food })},
				{Label: "Poison", Widget: WidgetText, Format: "%.0f", Getter: snapshotField(func(s telemetry.Snapshot) int { return s.Poison })},
				{Widget: WidgetSpacer},
				{Label: "Food color", Widget: WidgetSwatch, Color: food},
				{Label: "Poison color", Widget: WidgetSwatch, Color: poison},
			},
		},
		{
			Title: "Mean traits",
			Fields: []FieldDescriptor{
				{Label: "Health", Widget: WidgetBar, Range: FieldRange{Max: traits.MaxHealth}, Getter: snapshotField(func(s telemetry.Snapshot) int { return s.MeanHealth })},
				{Label: "Vision", Widget: WidgetBar, Range: FieldRange{Max: traits.MaxVision}, Getter: snapshotField(func(s telemetry.Snapshot) int { return s.MeanVision })},
				{Label: "Speed", Widget: WidgetBar, Range: FieldRange{Max: traits.MaxSpeed}, Getter: snapshotField(func(s telemetry.Snapshot) int { return s.MeanSpeed })},
				{Label: "Drive", Widget: WidgetBar, Range: FieldRange{Max: traits.MaxDrive}, Getter: snapshotField(func(s telemetry.Snapshot) int { return s.MeanDrive })},
				{Label: "Aggression", Widget: WidgetBar, Range: FieldRange{Max: traits.MaxAggression}, Getter: snapshotField(func(s telemetry.Snapshot) int { return s.MeanAggression })},
			},
		},
	}
}
