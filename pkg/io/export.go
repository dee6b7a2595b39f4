package io

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/pcba/pkg/assembly"
)

// Output headers, in column order.
var (
	BOMHeader       = []string{"Component", "Designator", "Footprint", "JLCPCB"}
	PlacementHeader = []string{"Designator", "Mid X", "Mid Y", "Layer", "Rotation"}
)

// WriteBOM writes BOM lines to w in first-seen order. Every field is quoted.
func WriteBOM(w io.Writer, lines []assembly.Line) error {
	cw := newRecordWriter(w)
	cw.text(BOMHeader...)
	for _, l := range lines {
		cw.text(l.Value, l.Designator(), l.Footprint, l.PartNumber)
	}
	return cw.flush()
}

// WritePlacement writes placement rows to w in input order. Text fields are
// quoted and numbers are bare.
func WritePlacement(w io.Writer, rows []assembly.Placement) error {
	cw := newRecordWriter(w)
	cw.text(PlacementHeader...)
	for _, p := range rows {
		cw.begin()
		cw.quoted(p.Designator)
		cw.number(p.MidX)
		cw.number(p.MidY)
		cw.quoted(p.Layer.String())
		cw.number(p.Rotation)
		cw.end()
	}
	return cw.flush()
}

// ExportBOM writes the BOM to path. The file appears only once it is
// complete.
func ExportBOM(path string, lines []assembly.Line) error {
	return commit(StageBOM(path, lines))
}

// ExportPlacement writes the placement list to path. The file appears only
// once it is complete.
func ExportPlacement(path string, rows []assembly.Placement) error {
	return commit(StagePlacement(path, rows))
}

// FormatNumber renders v the way the placement table expects: shortest
// round-trip digits, ".0" on integral values, exponent form for very small
// or very large magnitudes. Negative zero is written as 0.0.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0.0"
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func commit(st *Staged, err error) error {
	if err != nil {
		return err
	}
	return st.Commit()
}

// Staged is a complete output waiting next to its destination. Nothing at
// the destination changes until Commit.
type Staged struct {
	tmp  string
	path string
}

// Stage writes fn's output to a temporary file in path's directory.
func Stage(path string, fn func(io.Writer) error) (*Staged, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	st := &Staged{tmp: tmp.Name(), path: path}

	if err := fn(tmp); err != nil {
		tmp.Close()
		st.Discard()
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		st.Discard()
		return nil, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(st.tmp, 0o644); err != nil {
		st.Discard()
		return nil, fmt.Errorf("chmod %s: %w", path, err)
	}
	return st, nil
}

// StageBOM stages the BOM for path.
func StageBOM(path string, lines []assembly.Line) (*Staged, error) {
	return Stage(path, func(w io.Writer) error { return WriteBOM(w, lines) })
}

// StagePlacement stages the placement list for path.
func StagePlacement(path string, rows []assembly.Placement) (*Staged, error) {
	return Stage(path, func(w io.Writer) error { return WritePlacement(w, rows) })
}

// StageSVG stages a rendered drawing for path.
func StageSVG(path string, svg []byte) (*Staged, error) {
	return Stage(path, func(w io.Writer) error {
		_, err := w.Write(svg)
		return err
	})
}

// Path is the destination.
func (s *Staged) Path() string { return s.path }

// Commit moves the staged file onto its destination, replacing any
// previous file.
func (s *Staged) Commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		s.Discard()
		return fmt.Errorf("rename %s: %w", s.path, err)
	}
	s.tmp = ""
	return nil
}

// Discard removes the staged file. It is a no-op after Commit.
func (s *Staged) Discard() {
	if s.tmp != "" {
		os.Remove(s.tmp)
		s.tmp = ""
	}
}

// recordWriter writes CSV records with per-field quoting control and CRLF
// terminators. The first write error sticks and is returned by flush.
type recordWriter struct {
	w     *bufio.Writer
	first bool
	err   error
}

func newRecordWriter(w io.Writer) *recordWriter {
	return &recordWriter{w: bufio.NewWriter(w)}
}

func (c *recordWriter) begin() { c.first = true }

func (c *recordWriter) end() { c.write("\r\n") }

func (c *recordWriter) text(fields ...string) {
	c.begin()
	for _, f := range fields {
		c.quoted(f)
	}
	c.end()
}

func (c *recordWriter) quoted(s string) {
	c.sep()
	c.write(`"` + strings.ReplaceAll(s, `"`, `""`) + `"`)
}

func (c *recordWriter) number(v float64) {
	c.sep()
	c.write(FormatNumber(v))
}

func (c *recordWriter) sep() {
	if !c.first {
		c.write(",")
	}
	c.first = false
}

func (c *recordWriter) write(s string) {
	if c.err != nil {
		return
	}
	_, c.err = c.w.WriteString(s)
}

func (c *recordWriter) flush() error {
	if c.err != nil {
		return c.err
	}
	return c.w.Flush()
}

// ExportSVG writes a rendered drawing to path.
func ExportSVG(path string, svg []byte) error {
	return commit(StageSVG(path, svg))
}
