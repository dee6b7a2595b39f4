// Package units converts the design tool's native units.
//
// KiCad exports lengths as integer micrometres (nanometre-precise boards
// still export whole micrometres in the interim CSV) and rotations as
// degrees. Conversion keeps full float precision; nothing is rounded.
package units

import (
	"strconv"
	"strings"

	"github.com/matzehuels/pcba/pkg/errors"
)

// MicronsPerMillimetre is the native-to-millimetre divisor.
const MicronsPerMillimetre = 1_000_000.0

// ParseNative parses a native numeric field. Surrounding spaces are
// ignored; anything else that is not a signed integer or decimal fails with
// INVALID_DIMENSION.
func ParseNative(v string) (float64, error) {
	s := strings.TrimSpace(v)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || s == "" || !isPlainNumber(s) {
		return 0, errors.New(errors.ErrCodeInvalidDimension, "%q is not a number", v)
	}
	return f, nil
}

// ToMillimetres converts a native micrometre string to millimetres.
func ToMillimetres(v string) (float64, error) {
	f, err := ParseNative(v)
	if err != nil {
		return 0, err
	}
	return Millimetres(f), nil
}

// Millimetres converts an already parsed native length to millimetres.
func Millimetres(native float64) float64 {
	return native / MicronsPerMillimetre
}

// Degrees parses a native rotation. The tool's winding is passed through
// unchanged.
func Degrees(v string) (float64, error) {
	return ParseNative(v)
}

// isPlainNumber rejects the forms strconv accepts that a CSV exporter never
// writes: Inf, NaN, hex floats and digit separators.
func isPlainNumber(s string) bool {
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
		case (r == '+' || r == '-') && (i == 0 || s[i-1] == 'e' || s[i-1] == 'E'):
		case r == 'e' || r == 'E':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
