// Package components defines the records the simulation systems operate on.
package components

import "image/color"

// Kind is what a world cell holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFood
	KindPoison
	KindOccupied
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindFood:
		return "food"
	case KindPoison:
		return "poison"
	case KindOccupied:
		return "occupied"
	}
	return "unknown"
}

// OrganismID is a slot index into the organism store.
type OrganismID int32

// NoOrganism marks a cell without an occupant.
const NoOrganism OrganismID = -1

// Cell is one unit of the world grid.
// Occupant is a non-owning reference, valid only while Kind == KindOccupied
// and the referenced organism is alive.
type Cell struct {
	Kind     Kind
	Occupant OrganismID
	Color    color.RGBA
}

// Occupied reports whether an organism is placed on the cell.
func (c Cell) Occupied() bool {
	return c.Kind == KindOccupied
}
