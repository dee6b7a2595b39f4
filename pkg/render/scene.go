package render

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/pcba/pkg/board"
	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/refdes"
)

// Part is one drawable component.
type Part struct {
	Ref    string
	Family refdes.Family
	Layer  component.Layer
	Frame  component.Frame
}

// Box returns the part frame as a box in millimetres.
func (p Part) Box() r2.Box {
	return r2.Box{Min: p.Frame.Origin, Max: r2.Add(p.Frame.Origin, p.Frame.Size)}
}

// Scene is everything drawn for one board.
type Scene struct {
	// Outline is the closed board polygon in millimetres.
	Outline []r2.Vec
	Parts   []Part
}

// NewScene builds a scene from a normalized outline and its records.
// A nil outline yields a scene with parts only.
func NewScene(o *board.Outline, records []*component.Record) Scene {
	s := Scene{Parts: make([]Part, 0, len(records))}
	if o != nil {
		s.Outline = o.Closed()
	}
	for _, r := range records {
		s.Parts = append(s.Parts, Part{
			Ref:    r.Ref,
			Family: r.Family,
			Layer:  r.Layer,
			Frame:  r.Frame,
		})
	}
	return s
}

// Extent returns the box covering the outline and every part. Frames with
// negative size are normalized first. An empty scene has a zero extent.
func (s Scene) Extent() r2.Box {
	var (
		box   r2.Box
		valid bool
	)
	grow := func(v r2.Vec) {
		if !valid {
			box = r2.Box{Min: v, Max: v}
			valid = true
			return
		}
		box.Min.X, box.Min.Y = min(box.Min.X, v.X), min(box.Min.Y, v.Y)
		box.Max.X, box.Max.Y = max(box.Max.X, v.X), max(box.Max.Y, v.Y)
	}
	for _, p := range s.Outline {
		grow(p)
	}
	for _, p := range s.Parts {
		b := p.Box()
		grow(b.Min)
		grow(b.Max)
	}
	return box
}
