// Package component builds normalized component records from exporter rows.
package component

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/pcba/pkg/errors"
	"github.com/matzehuels/pcba/pkg/refdes"
	"github.com/matzehuels/pcba/pkg/units"
)

// Column names of the exporter's component table.
const (
	FieldRef       = "ref"
	FieldValue     = "value"
	FieldLayer     = "layer"
	FieldFootprint = "footprint"
	FieldLCSC      = "lcsc"
	FieldX         = "x"
	FieldY         = "y"
	FieldRot       = "rot"
	FieldLeft      = "left"
	FieldTop       = "top"
	FieldRight     = "right"
	FieldBottom    = "bottom"
)

// RequiredFields lists every column a row must carry, in validation order.
var RequiredFields = []string{
	FieldRef, FieldValue, FieldLayer, FieldFootprint, FieldLCSC,
	FieldX, FieldY, FieldRot,
	FieldLeft, FieldTop, FieldRight, FieldBottom,
}

// Fields is one raw exporter row keyed by column name.
// A key that is absent is a missing field; an empty value is present.
type Fields map[string]string

// Layer is the copper side a component is mounted on.
type Layer int

const (
	Top Layer = iota
	Bottom
)

// FrontCopper is KiCad's name for the top copper layer.
const FrontCopper = "F.Cu"

// ParseLayer maps a native copper-layer name to a side. F.Cu is the top;
// every other copper layer is the bottom. The words "top" and "bottom",
// which some exporter versions write directly, are accepted as themselves.
func ParseLayer(name string) Layer {
	switch {
	case name == FrontCopper, strings.EqualFold(name, "top"):
		return Top
	default:
		return Bottom
	}
}

// String returns "top" or "bottom" as used in the placement table.
func (l Layer) String() string {
	if l == Top {
		return "top"
	}
	return "bottom"
}

// Record is one component instance. Records are not modified after Build;
// merging happens at the BOM level.
type Record struct {
	Ref        string
	Value      string
	Layer      Layer
	LayerName  string // native layer name as exported
	Footprint  string
	PartNumber string // LCSC part number, may be empty

	// X and Y are native micrometres. Y is negated on ingestion so that
	// up is positive.
	X, Y float64
	// Rotation is in native degrees.
	Rotation float64
	// Bounds holds left/top as Min and right/bottom as Max, native units,
	// as exported (not sign flipped).
	Bounds r2.Box

	Family refdes.Family

	// Frame is the component's drawing box in millimetres relative to the
	// board origin. It is cosmetic and not part of the BOM/placement data.
	Frame Frame
}

// Frame is a drawing rectangle: Origin is the left/top corner and Size the
// width/height, both in millimetres.
type Frame struct {
	Origin r2.Vec
	Size   r2.Vec
}

// RefFamily returns the reference family string of r, e.g. "R" for "R100".
func (r *Record) RefFamily() string {
	return refdes.FamilyOf(r.Ref)
}

// Builder constructs records relative to a board origin (millimetres).
// A nil Classifier uses the default reference prefixes.
type Builder struct {
	Origin     r2.Vec
	Classifier *refdes.Classifier
}

// Build constructs a record with the default classifier.
func Build(origin r2.Vec, f Fields) (*Record, error) {
	return Builder{Origin: origin}.Build(f)
}

// Build validates f and constructs a record. A missing column fails with
// MISSING_FIELD and a non-numeric geometry column with INVALID_DIMENSION;
// nothing is defaulted.
func (b Builder) Build(f Fields) (*Record, error) {
	for _, name := range RequiredFields {
		if _, ok := f[name]; !ok {
			return nil, errors.MissingField(name)
		}
	}

	var nums [6]float64
	for i, name := range []string{FieldX, FieldY, FieldLeft, FieldTop, FieldRight, FieldBottom} {
		v, err := units.ParseNative(f[name])
		if err != nil {
			return nil, errors.InvalidDimension(name, f[name])
		}
		nums[i] = v
	}
	x, y := nums[0], nums[1]
	left, top, right, bottom := nums[2], nums[3], nums[4], nums[5]

	rot, err := units.Degrees(f[FieldRot])
	if err != nil {
		return nil, errors.InvalidDimension(FieldRot, f[FieldRot])
	}

	rec := &Record{
		Ref:        f[FieldRef],
		Value:      f[FieldValue],
		Layer:      ParseLayer(f[FieldLayer]),
		LayerName:  f[FieldLayer],
		Footprint:  f[FieldFootprint],
		PartNumber: f[FieldLCSC],
		X:          x,
		Y:          -y,
		Rotation:   rot,
		Bounds: r2.Box{
			Min: r2.Vec{X: left, Y: top},
			Max: r2.Vec{X: right, Y: bottom},
		},
		Family: b.Classifier.Classify(f[FieldRef]),
	}
	rec.Frame = frameOf(rec.Bounds, b.Origin)
	return rec, nil
}

func frameOf(bounds r2.Box, origin r2.Vec) Frame {
	left, top := units.Millimetres(bounds.Min.X), units.Millimetres(bounds.Min.Y)
	right, bottom := units.Millimetres(bounds.Max.X), units.Millimetres(bounds.Max.Y)
	return Frame{
		Origin: r2.Sub(r2.Vec{X: left, Y: top}, origin),
		Size:   r2.Vec{X: right - left, Y: bottom - top},
	}
}
