package assembly

import (
	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/rotation"
	"github.com/matzehuels/pcba/pkg/units"
)

// Placement is one row of the component placement list.
type Placement struct {
	Designator string
	MidX       float64 // millimetres
	MidY       float64 // millimetres, native sign
	Layer      component.Layer
	Rotation   float64 // degrees in [0, 360)
}

// NewPlacement derives the placement row for r. The record's y was negated
// on ingestion; the placement table uses the native sign, so it is negated
// back here. The rotation delta comes from rules; a nil table means none.
func NewPlacement(r *component.Record, rules *rotation.Table) Placement {
	return Placement{
		Designator: r.Ref,
		MidX:       units.Millimetres(r.X),
		MidY:       units.Millimetres(-r.Y),
		Layer:      r.Layer,
		Rotation:   rotation.Correct(r.Rotation, rules.Delta(r.Footprint)),
	}
}
