package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/pcba/pkg/refdes"
)

// Path is an open polyline in unit coordinates of a part frame: (0,0) is the
// left/top corner and (1,1) the right/bottom corner.
type Path []r2.Vec

// Glyph describes how a family is drawn inside its frame.
type Glyph struct {
	Strokes []Path
	// Hatches are hatched rectangles in unit coordinates.
	Hatches []r2.Box
	// Circle is a centred circle diameter as a fraction of the frame's
	// shorter side. Zero draws no circle.
	Circle float64
}

// polyline splits a coordinate list on NaN into separate paths.
func polyline(xs, ys []float64) []Path {
	var (
		out []Path
		cur Path
	)
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, r2.Vec{X: xs[i], Y: ys[i]})
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

var nan = math.NaN()

var resistorStrokes = polyline(
	[]float64{0.1, 0.3, 0.3, 0.7, 0.7, 0.9, nan, 0.7, 0.7, 0.3, 0.3},
	[]float64{0.5, 0.5, 0.2, 0.2, 0.5, 0.5, nan, 0.5, 0.8, 0.8, 0.5},
)

func icStrokes() []Path {
	body := Path{{X: 0.3, Y: 0.2}, {X: 0.7, Y: 0.2}, {X: 0.7, Y: 0.8}, {X: 0.3, Y: 0.8}, {X: 0.3, Y: 0.2}}
	out := []Path{body}
	for _, y := range []float64{0.3, 0.4, 0.5, 0.6, 0.7} {
		out = append(out,
			Path{{X: 0.1, Y: y}, {X: 0.3, Y: y}},
			Path{{X: 0.7, Y: y}, {X: 0.9, Y: y}},
		)
	}
	return out
}

func inductorStrokes() []Path {
	// Leads plus four humps approximated by half-circle polylines.
	out := []Path{
		{{X: 0.1, Y: 0.5}, {X: 0.2, Y: 0.5}},
		{{X: 0.8, Y: 0.5}, {X: 0.9, Y: 0.5}},
	}
	const humps, steps = 4, 8
	w := 0.6 / humps
	for h := range humps {
		cx := 0.2 + w*(float64(h)+0.5)
		var p Path
		for s := 0; s <= steps; s++ {
			a := math.Pi * float64(s) / steps
			p = append(p, r2.Vec{X: cx - w/2*math.Cos(a), Y: 0.5 - 0.25*math.Sin(a)})
		}
		out = append(out, p)
	}
	return out
}

// unknownGap is the inset of the Unknown hatch from the frame.
const unknownGap = 0.2

var glyphs = map[refdes.Family]Glyph{
	refdes.Resistor: {Strokes: resistorStrokes},
	refdes.FerriteBead: {
		Strokes: resistorStrokes,
		Hatches: []r2.Box{{Min: r2.Vec{X: 0.3, Y: 0.2}, Max: r2.Vec{X: 0.7, Y: 0.8}}},
	},
	refdes.Capacitor: {Strokes: polyline(
		[]float64{0.1, 0.4, nan, 0.4, 0.4, nan, 0.6, 0.6, nan, 0.6, 0.9},
		[]float64{0.5, 0.5, nan, 0.2, 0.8, nan, 0.2, 0.8, nan, 0.5, 0.5},
	)},
	refdes.Transistor: {Circle: 0.9},
	refdes.IC:         {Strokes: icStrokes()},
	refdes.Diode: {Strokes: polyline(
		[]float64{0.1, 0.3, 0.3, 0.7, 0.3, 0.3, nan, 0.7, 0.7, nan, 0.7, 0.9},
		[]float64{0.5, 0.5, 0.3, 0.5, 0.7, 0.5, nan, 0.3, 0.7, nan, 0.5, 0.5},
	)},
	refdes.Inductor: {Strokes: inductorStrokes()},
	refdes.Unknown: {Hatches: []r2.Box{{
		Min: r2.Vec{X: unknownGap, Y: unknownGap},
		Max: r2.Vec{X: 1 - unknownGap, Y: 1 - unknownGap},
	}}},
}

// GlyphFor returns the glyph for f, falling back to the Unknown glyph.
func GlyphFor(f refdes.Family) Glyph {
	if g, ok := glyphs[f]; ok {
		return g
	}
	return glyphs[refdes.Unknown]
}
