// Package assembly derives the manufacturing tables from component records.
//
// A [BOM] merges records sharing the same (value, footprint, part number)
// into one line per key. Placement rows are one-to-one with records and
// carry the rotation corrected by a [rotation.Table].
package assembly

import (
	"strings"

	"github.com/matzehuels/pcba/pkg/component"
)

// DesignatorSeparator joins the designators of a BOM line.
const DesignatorSeparator = ","

// Key is the BOM merge key.
type Key struct {
	Value      string
	Footprint  string
	PartNumber string
}

// KeyOf returns the merge key of a record.
func KeyOf(r *component.Record) Key {
	return Key{Value: r.Value, Footprint: r.Footprint, PartNumber: r.PartNumber}
}

// Line is one BOM entry. Designators are kept in first-seen order.
type Line struct {
	Key
	Designators []string
}

// Designator returns the designators joined for output.
func (l Line) Designator() string {
	return strings.Join(l.Designators, DesignatorSeparator)
}

// Quantity returns how many parts the line places.
func (l Line) Quantity() int {
	return len(l.Designators)
}

// BOM accumulates lines in first-seen key order.
// The zero value is ready to use.
type BOM struct {
	index map[Key]int
	lines []Line
}

// NewBOM returns an empty BOM.
func NewBOM() *BOM {
	return &BOM{}
}

// Add appends r's designator to the line for its key, starting a new line
// if the key has not been seen.
func (b *BOM) Add(r *component.Record) {
	key := KeyOf(r)
	if b.index == nil {
		b.index = make(map[Key]int)
	}
	if i, ok := b.index[key]; ok {
		b.lines[i].Designators = append(b.lines[i].Designators, r.Ref)
		return
	}
	b.index[key] = len(b.lines)
	b.lines = append(b.lines, Line{Key: key, Designators: []string{r.Ref}})
}

// Len returns the number of lines.
func (b *BOM) Len() int { return len(b.lines) }

// Lines returns a copy of the lines in first-seen order.
func (b *BOM) Lines() []Line {
	out := make([]Line, len(b.lines))
	for i, l := range b.lines {
		out[i] = Line{Key: l.Key, Designators: append([]string(nil), l.Designators...)}
	}
	return out
}

// Parts returns the total number of designators across all lines.
func (b *BOM) Parts() int {
	n := 0
	for _, l := range b.lines {
		n += len(l.Designators)
	}
	return n
}
