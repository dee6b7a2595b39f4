// Package io reads the exporter's CSV tables and writes the assembly tables.
//
// # Input
//
// board.csv lists outline vertices in winding order, in micrometres:
//
//	x,y
//	100000000,50000000
//	160000000,50000000
//
// components.csv has one row per placed footprint. Columns are matched by
// header name, so their order does not matter:
//
//	ref,value,layer,footprint,lcsc,x,y,rot,top,left,bottom,right
//	R1,10k,F.Cu,R_0402,C25744,120000000,80000000,90,79500000,119000000,80500000,121000000
//
// A row with fewer cells than the header leaves the trailing columns absent,
// which [component.Build] rejects as a missing field.
//
// # Output
//
// The BOM quotes every field; the placement list quotes text fields and
// leaves numbers bare. Both use CRLF line endings:
//
//	"Component","Designator","Footprint","JLCPCB"
//	"10k","R1,R4","R_0402","C25744"
//
//	"Designator","Mid X","Mid Y","Layer","Rotation"
//	"R1",120.0,80.0,"top",90.0
//
// Numbers are written in shortest round-trip form with a ".0" suffix on
// integral values.
//
// [component.Build]: github.com/matzehuels/pcba/pkg/component.Build
package io
