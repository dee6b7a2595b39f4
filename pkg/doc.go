// Package pkg provides the libraries behind the pcba command.
//
// # Overview
//
// pcba turns the two CSV tables a KiCad export script writes into the
// files JLCPCB's assembly service takes. The packages, leaf first:
//
//  1. [units], [refdes]: native unit conversion and reference prefixes
//  2. [rotation]: footprint pattern to rotation offset rules
//  3. [board], [component]: the outline and one record per part
//  4. [assembly]: BOM lines and placement rows
//  5. [io]: the CSV contracts on both sides
//  6. [pipeline]: one run from export directory to output files
//  7. [render]: an SVG drawing of the board for review
//
// [errors] carries the error codes every package returns, and
// [observability] lets a binary hook into pipeline stages.
//
// # Data flow
//
//	board.csv, components.csv
//	         ↓
//	    [io] (read tables)
//	         ↓
//	    [board] + [component] (normalize, build records)
//	         ↓
//	    [assembly] (merge by value/footprint/LCSC, correct rotation)
//	         ↓
//	out_bom.csv, out_cpl.csv (+ board.svg)
//
// [units]: github.com/matzehuels/pcba/pkg/units
// [refdes]: github.com/matzehuels/pcba/pkg/refdes
// [rotation]: github.com/matzehuels/pcba/pkg/rotation
// [board]: github.com/matzehuels/pcba/pkg/board
// [component]: github.com/matzehuels/pcba/pkg/component
// [assembly]: github.com/matzehuels/pcba/pkg/assembly
// [io]: github.com/matzehuels/pcba/pkg/io
// [pipeline]: github.com/matzehuels/pcba/pkg/pipeline
// [render]: github.com/matzehuels/pcba/pkg/render
// [errors]: github.com/matzehuels/pcba/pkg/errors
// [observability]: github.com/matzehuels/pcba/pkg/observability
package pkg
