// Package render draws a board and its components as SVG for review.
//
// # Overview
//
// Rendering is split into a geometric model and a sink:
//
//   - [Scene] holds the normalized outline and one [Part] per component,
//     all in millimetres relative to the board origin
//   - [Glyph] is the drawing strategy for a reference family, expressed in
//     unit coordinates of the part's frame
//   - [RenderSVG] writes a scene as a standalone SVG document
//
// The glyph table is keyed by [refdes.Family]. Families without an entry,
// including [refdes.Unknown], get a hatched box, so every part is drawn.
//
//	scene := render.NewScene(outline, records)
//	svg := render.RenderSVG(scene, render.WithLabels())
//
// Nothing here is used to compute the BOM or the placement list.
//
// [refdes.Family]: github.com/matzehuels/pcba/pkg/refdes.Family
// [refdes.Unknown]: github.com/matzehuels/pcba/pkg/refdes.Unknown
package render
