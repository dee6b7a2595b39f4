package render

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/pcba/pkg/board"
	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/refdes"
)

func TestGlyphTableCoversFamilies(t *testing.T) {
	for _, f := range []refdes.Family{
		refdes.Unknown, refdes.Resistor, refdes.FerriteBead, refdes.Capacitor,
		refdes.Transistor, refdes.IC, refdes.Diode, refdes.Inductor,
	} {
		g, ok := glyphs[f]
		require.True(t, ok, "no glyph for %s", f)
		assert.True(t, len(g.Strokes) > 0 || len(g.Hatches) > 0 || g.Circle > 0, "empty glyph for %s", f)
	}
	assert.Equal(t, glyphs[refdes.Unknown], GlyphFor(refdes.Family(99)))
}

func TestGlyphsStayInsideFrame(t *testing.T) {
	for f, g := range glyphs {
		for _, p := range g.Strokes {
			for _, v := range p {
				assert.True(t, v.X >= 0 && v.X <= 1 && v.Y >= 0 && v.Y <= 1, "%s point %v outside unit box", f, v)
			}
		}
	}
}

func TestPolylineSplitsOnNaN(t *testing.T) {
	nan := math.NaN()
	paths := polyline([]float64{0, 1, nan, 2, 3, nan}, []float64{0, 1, nan, 2, 3, nan})
	require.Len(t, paths, 2)
	assert.Equal(t, Path{{X: 2, Y: 2}, {X: 3, Y: 3}}, paths[1])

	assert.Len(t, GlyphFor(refdes.Capacitor).Strokes, 4)
	assert.Len(t, GlyphFor(refdes.Resistor).Strokes, 2)
	assert.Len(t, GlyphFor(refdes.IC).Strokes, 11)
}

func TestNewScene(t *testing.T) {
	o := board.New()
	o.AddPoint(100, 200)
	o.AddPoint(150, 200)
	o.AddPoint(150, 230)
	o.Normalize()

	rec := &component.Record{
		Ref:    "R1",
		Family: refdes.Resistor,
		Frame:  component.Frame{Origin: r2.Vec{X: 10, Y: 5}, Size: r2.Vec{X: 2, Y: 1}},
	}
	s := NewScene(o, []*component.Record{rec})

	require.Len(t, s.Outline, 4)
	assert.Equal(t, s.Outline[0], s.Outline[3])
	require.Len(t, s.Parts, 1)
	assert.Equal(t, "R1", s.Parts[0].Ref)

	ext := s.Extent()
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, ext.Min)
	assert.Equal(t, r2.Vec{X: 50, Y: 30}, ext.Max)
}

func TestExtentIncludesParts(t *testing.T) {
	s := Scene{Parts: []Part{{Frame: component.Frame{Origin: r2.Vec{X: -3, Y: 4}, Size: r2.Vec{X: 5, Y: 2}}}}}
	ext := s.Extent()
	assert.Equal(t, r2.Vec{X: -3, Y: 4}, ext.Min)
	assert.Equal(t, r2.Vec{X: 2, Y: 6}, ext.Max)

	assert.Equal(t, r2.Box{}, Scene{}.Extent())
}

func TestRenderSVG(t *testing.T) {
	s := Scene{
		Outline: []r2.Vec{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 20}, {X: 0, Y: 0}},
		Parts: []Part{
			{Ref: "Q1", Family: refdes.Transistor, Frame: component.Frame{Origin: r2.Vec{X: 5, Y: 5}, Size: r2.Vec{X: 4, Y: 2}}},
			{Ref: "X<1>", Family: refdes.Unknown, Layer: component.Bottom, Frame: component.Frame{Origin: r2.Vec{X: 20, Y: 5}, Size: r2.Vec{X: 2, Y: 2}}},
		},
	}
	out := string(RenderSVG(s, WithLabels(), WithScale(5), WithMargin(0)))

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 20" width="200" height="100">`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `points="0,0 40,0 40,20 0,0"`)
	assert.Contains(t, out, `fill="`+boardFill+`"`)
	assert.Contains(t, out, `<circle cx="7" cy="6" r="0.9"`)
	assert.Contains(t, out, `fill="url(#hatch)"`)
	assert.Contains(t, out, `data-family="transistor"`)
	assert.Contains(t, out, "X&lt;1&gt;")
	assert.NotContains(t, out, "X<1>")
	assert.Equal(t, 2, strings.Count(out, `class="part"`))
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		-0.0001: "0",
		10:      "10",
		1.25:    "1.25",
		-2.5:    "-2.5",
		1.23456: "1.235",
	}
	for in, want := range tests {
		assert.Equal(t, want, num(in), "num(%v)", in)
	}
}
