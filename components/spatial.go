package components

// Pos is a cell coordinate on the toroidal world.
type Pos struct {
	X, Y int
}

// Add offsets a position without wrapping.
func (p Pos) Add(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}
