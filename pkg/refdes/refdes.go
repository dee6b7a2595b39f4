// Package refdes classifies component reference designators.
//
// A reference such as "R100" or "FB3" starts with a family prefix naming the
// kind of part. The family is only used to pick a drawing for the board
// visualization; BOM and placement output never depend on it.
package refdes

import (
	"strings"
	"unicode"
)

// FamilyOf returns the leading alphabetic run of ref, upper-cased.
// If ref does not start with a letter it is not classifiable and is returned
// unchanged, so "+45" is its own family.
func FamilyOf(ref string) string {
	for i, r := range ref {
		if unicode.IsLetter(r) {
			continue
		}
		if i == 0 {
			return ref
		}
		return strings.ToUpper(ref[:i])
	}
	return strings.ToUpper(ref)
}

// Family is the drawing variant selected for a reference family.
type Family int

const (
	Unknown Family = iota
	Resistor
	FerriteBead
	Capacitor
	Transistor
	IC
	Diode
	Inductor
)

var familyNames = [...]string{
	Unknown:     "unknown",
	Resistor:    "resistor",
	FerriteBead: "ferrite-bead",
	Capacitor:   "capacitor",
	Transistor:  "transistor",
	IC:          "ic",
	Diode:       "diode",
	Inductor:    "inductor",
}

// String returns the lower-case variant name used in config files and reports.
func (f Family) String() string {
	if f < 0 || int(f) >= len(familyNames) {
		return familyNames[Unknown]
	}
	return familyNames[f]
}

// ParseFamily maps a variant name back to a Family.
func ParseFamily(name string) (Family, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range familyNames {
		if n == name {
			return Family(f), true
		}
	}
	return Unknown, false
}

// DefaultPrefixes maps the standard reference prefixes to their variants.
var DefaultPrefixes = map[string]Family{
	"FB": FerriteBead,
	"R":  Resistor,
	"C":  Capacitor,
	"Q":  Transistor,
	"U":  IC,
	"D":  Diode,
}

// Classifier maps reference families to variants.
// The zero value uses DefaultPrefixes.
type Classifier struct {
	prefixes map[string]Family
}

// NewClassifier returns a classifier using DefaultPrefixes plus extra.
// Entries in extra override the defaults.
func NewClassifier(extra map[string]Family) *Classifier {
	prefixes := make(map[string]Family, len(DefaultPrefixes)+len(extra))
	for k, v := range DefaultPrefixes {
		prefixes[k] = v
	}
	for k, v := range extra {
		prefixes[strings.ToUpper(k)] = v
	}
	return &Classifier{prefixes: prefixes}
}

// Classify returns the variant for ref. Unrecognised families, including
// non-alphabetic references, yield Unknown.
func (c *Classifier) Classify(ref string) Family {
	prefixes := DefaultPrefixes
	if c != nil && c.prefixes != nil {
		prefixes = c.prefixes
	}
	if f, ok := prefixes[FamilyOf(ref)]; ok {
		return f
	}
	return Unknown
}

// Classify classifies ref with the default prefixes.
func Classify(ref string) Family {
	return (*Classifier)(nil).Classify(ref)
}
