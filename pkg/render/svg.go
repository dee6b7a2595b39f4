package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/matzehuels/pcba/pkg/component"
)

const (
	boardFill    = "#002d04"
	boardStroke  = "#000000"
	frameStroke  = "#dddddd"
	glyphStroke  = "#f2f2f2"
	bottomStroke = "#9ecbff"
	labelFill    = "#ffffff"
	fontFamily   = "monospace"

	defaultScale  = 10.0 // px per mm
	defaultMargin = 2.0  // mm
)

// SVGOption configures RenderSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	margin float64
	labels bool
}

// WithScale sets the output size in pixels per millimetre.
func WithScale(pxPerMM float64) SVGOption {
	return func(r *svgRenderer) {
		if pxPerMM > 0 {
			r.scale = pxPerMM
		}
	}
}

// WithMargin sets the blank border around the drawing, in millimetres.
func WithMargin(mm float64) SVGOption {
	return func(r *svgRenderer) {
		if mm >= 0 {
			r.margin = mm
		}
	}
}

// WithLabels writes each part's reference at the centre of its frame.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// RenderSVG writes s as an SVG document. The viewBox is in millimetres.
func RenderSVG(s Scene, opts ...SVGOption) []byte {
	r := svgRenderer{scale: defaultScale, margin: defaultMargin}
	for _, opt := range opts {
		opt(&r)
	}

	ext := s.Extent()
	minX, minY := ext.Min.X-r.margin, ext.Min.Y-r.margin
	w := ext.Max.X - ext.Min.X + 2*r.margin
	h := ext.Max.Y - ext.Min.Y + 2*r.margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		num(minX), num(minY), num(w), num(h), w*r.scale, h*r.scale)
	renderDefs(&buf)

	if len(s.Outline) > 0 {
		fmt.Fprintf(&buf, `  <polygon class="board" points="%s" fill="%s" stroke="%s" stroke-width="2" vector-effect="non-scaling-stroke"/>`+"\n",
			points(s.Outline), boardFill, boardStroke)
	}
	for _, p := range s.Parts {
		renderPart(&buf, p, r.labels)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs>
    <pattern id="hatch" patternUnits="userSpaceOnUse" width="0.4" height="0.4" patternTransform="rotate(45)">
      <line x1="0" y1="0" x2="0" y2="0.4" stroke="` + glyphStroke + `" stroke-width="0.08"/>
    </pattern>
  </defs>
`)
}

func renderPart(buf *bytes.Buffer, p Part, label bool) {
	f := p.Frame
	stroke := glyphStroke
	if p.Layer == component.Bottom {
		stroke = bottomStroke
	}

	fmt.Fprintf(buf, `  <g class="part" id="part-%s" data-family="%s">`+"\n", escapeXML(p.Ref), p.Family)
	fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s" stroke-dasharray="1 2" stroke-width="1" vector-effect="non-scaling-stroke"/>`+"\n",
		num(f.Origin.X), num(f.Origin.Y), num(math.Abs(f.Size.X)), num(math.Abs(f.Size.Y)), frameStroke)

	g := GlyphFor(p.Family)
	for _, path := range g.Strokes {
		fmt.Fprintf(buf, `    <polyline points="%s" fill="none" stroke="%s" stroke-width="1" vector-effect="non-scaling-stroke"/>`+"\n",
			points(place(path, f)), stroke)
	}
	for _, hb := range g.Hatches {
		a, b := at(hb.Min, f), at(hb.Max, f)
		fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" fill="url(#hatch)" stroke="%s" stroke-width="1" vector-effect="non-scaling-stroke"/>`+"\n",
			num(min(a.X, b.X)), num(min(a.Y, b.Y)), num(math.Abs(b.X-a.X)), num(math.Abs(b.Y-a.Y)), stroke)
	}
	if g.Circle > 0 {
		c := at(r2.Vec{X: 0.5, Y: 0.5}, f)
		rad := g.Circle * min(math.Abs(f.Size.X), math.Abs(f.Size.Y)) / 2
		fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="1" vector-effect="non-scaling-stroke"/>`+"\n",
			num(c.X), num(c.Y), num(rad), stroke)
	}
	if label {
		c := at(r2.Vec{X: 0.5, Y: 0.5}, f)
		size := labelSize(f, p.Ref)
		fmt.Fprintf(buf, `    <text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			num(c.X), num(c.Y), fontFamily, num(size), labelFill, escapeXML(p.Ref))
	}
	buf.WriteString("  </g>\n")
}

const (
	labelHeightRatio = 0.3
	labelCharWidth   = 0.6
)

func labelSize(f component.Frame, text string) float64 {
	n := max(1, len(text))
	w, h := math.Abs(f.Size.X), math.Abs(f.Size.Y)
	return min(h*labelHeightRatio, w/(float64(n)*labelCharWidth))
}

// at maps a unit coordinate into the frame.
func at(u r2.Vec, f component.Frame) r2.Vec {
	return r2.Vec{X: f.Origin.X + u.X*f.Size.X, Y: f.Origin.Y + u.Y*f.Size.Y}
}

func place(p Path, f component.Frame) []r2.Vec {
	out := make([]r2.Vec, len(p))
	for i, u := range p {
		out[i] = at(u, f)
	}
	return out
}

func points(ps []r2.Vec) string {
	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(p.X))
		sb.WriteByte(',')
		sb.WriteString(num(p.Y))
	}
	return sb.String()
}

// num formats a coordinate with three decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
