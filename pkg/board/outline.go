// Package board models the board outline polygon.
//
// The outline is only used to give component drawings a board-relative,
// zero-based frame. It never influences BOM or placement output.
package board

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Outline is an ordered polygon of outline vertices. The winding order of
// the input is preserved.
type Outline struct {
	points     []r2.Vec
	min        r2.Vec
	normalized bool
}

// New returns an empty outline.
func New() *Outline {
	return &Outline{}
}

// AddPoint appends a vertex and lowers the running minima if needed.
// The first point always becomes the initial minimum.
func (o *Outline) AddPoint(x, y float64) {
	p := r2.Vec{X: x, Y: y}
	if len(o.points) == 0 {
		o.min = p
	} else {
		if x < o.min.X {
			o.min.X = x
		}
		if y < o.min.Y {
			o.min.Y = y
		}
	}
	o.points = append(o.points, p)
}

// Len returns the number of vertices.
func (o *Outline) Len() int { return len(o.points) }

// Points returns a copy of the vertices in input order.
func (o *Outline) Points() []r2.Vec {
	out := make([]r2.Vec, len(o.points))
	copy(out, o.points)
	return out
}

// Origin returns the minimum x and y seen while points were added. It is
// not reset by Normalize, so component frames can still be computed
// against it afterwards.
func (o *Outline) Origin() r2.Vec { return o.min }

// Normalize shifts every vertex by the running minima so the smallest x
// and y become zero. It is a single-shot transform: later calls do nothing.
func (o *Outline) Normalize() {
	if o.normalized {
		return
	}
	for i, p := range o.points {
		o.points[i] = r2.Sub(p, o.min)
	}
	o.normalized = true
}

// Normalized reports whether Normalize has run.
func (o *Outline) Normalized() bool { return o.normalized }

// Bounds returns the axis-aligned box enclosing the outline.
func (o *Outline) Bounds() r2.Box {
	if len(o.points) == 0 {
		return r2.Box{}
	}
	b := r2.Box{Min: o.points[0], Max: o.points[0]}
	for _, p := range o.points[1:] {
		b.Min.X = min(b.Min.X, p.X)
		b.Min.Y = min(b.Min.Y, p.Y)
		b.Max.X = max(b.Max.X, p.X)
		b.Max.Y = max(b.Max.Y, p.Y)
	}
	return b
}

// Closed returns the vertices with the first point repeated at the end,
// ready to be drawn as a closed polygon.
func (o *Outline) Closed() []r2.Vec {
	if len(o.points) == 0 {
		return nil
	}
	out := make([]r2.Vec, 0, len(o.points)+1)
	out = append(out, o.points...)
	return append(out, o.points[0])
}
