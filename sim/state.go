package sim

// RunState is whether the simulation advances on Update.
type RunState uint8

const (
	Running RunState = iota
	Paused
)

// Toggle flips between Running and Paused.
func (s RunState) Toggle() RunState {
	if s == Running {
		return Paused
	}
	return Running
}

// String returns the state name.
func (s RunState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}
