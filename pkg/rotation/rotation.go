// Package rotation corrects footprint orientations for the assembly house.
//
// Footprint libraries and pick-and-place machines disagree on the zero
// orientation of some packages. A rule file lists footprint patterns and
// the angle to add for each:
//
//	# pattern   delta
//	SOT-23      180     # tape orientation differs
//	TDK_ATB     90
//
// Patterns are unanchored regular expressions searched in the footprint
// name. Rules are tried in file order and the first match wins; a footprint
// no rule matches gets a zero delta.
package rotation

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/pcba/pkg/errors"
)

// CommentMarker starts a comment that runs to the end of the line.
const CommentMarker = "#"

// Rule is one pattern/delta line of a rule file.
type Rule struct {
	Pattern string
	Delta   float64
	Line    int // 1-based line number in the source file

	re *regexp.Regexp
}

// Matches reports whether the rule's pattern occurs in footprint.
func (r Rule) Matches(footprint string) bool {
	return r.re.MatchString(footprint)
}

// Table is an ordered, immutable set of rotation rules.
// The zero value and a nil *Table have no rules.
type Table struct {
	source string
	rules  []Rule
}

// Load reads a rule file from path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeMissingInputFile, "rotation rules %s not found", path)
		}
		return nil, fmt.Errorf("open rotation rules: %w", err)
	}
	defer f.Close()

	t, err := parse(f, path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Parse reads rules from r. Each non-blank line after comment stripping must
// hold a pattern and a numeric delta separated by whitespace; extra fields
// are ignored.
func Parse(r io.Reader) (*Table, error) {
	return parse(r, "rules")
}

func parse(r io.Reader, source string) (*Table, error) {
	t := &Table{source: source}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, CommentMarker); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidRule, "%s line %d: want \"<pattern> <delta>\", got %q", source, line, strings.TrimSpace(text))
		}

		re, err := regexp.Compile(fields[0])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "%s line %d: pattern %q", source, line, fields[0])
		}
		delta, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(delta) || math.IsInf(delta, 0) {
			return nil, errors.New(errors.ErrCodeInvalidRule, "%s line %d: delta %q is not a number", source, line, fields[1])
		}

		t.rules = append(t.rules, Rule{Pattern: fields[0], Delta: delta, Line: line, re: re})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	return t, nil
}

// Empty returns a table with no rules; every footprint gets a zero delta.
func Empty() *Table {
	return &Table{source: "none"}
}

// Len returns the number of rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Rules returns a copy of the rules in file order.
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Source names where the rules came from.
func (t *Table) Source() string {
	if t == nil {
		return "none"
	}
	return t.source
}

// Match returns the first rule matching footprint.
func (t *Table) Match(footprint string) (Rule, bool) {
	if t == nil {
		return Rule{}, false
	}
	for _, r := range t.rules {
		if r.Matches(footprint) {
			return r, true
		}
	}
	return Rule{}, false
}

// Delta returns the correction for footprint, or 0 if no rule matches.
func (t *Table) Delta(footprint string) float64 {
	if r, ok := t.Match(footprint); ok {
		return r.Delta
	}
	return 0
}

// Correct applies delta to a native rotation and normalizes the result to
// [0, 360).
func Correct(rot, delta float64) float64 {
	r := math.Mod(rot+delta, 360)
	if r < 0 {
		r += 360
	}
	// -1e-14 + 360 rounds to 360.
	if r >= 360 {
		r = 0
	}
	return r
}
