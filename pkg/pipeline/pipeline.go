// Package pipeline turns a KiCad export directory into JLCPCB assembly files.
//
// # Architecture
//
// A run has five stages, executed in order on one goroutine:
//
//  1. Rules: load the rotation override table (or use an empty one)
//  2. Board: read board.csv and normalize the outline
//  3. Components: read components.csv and build one record per row
//  4. Consolidate: merge records into BOM lines and derive placement rows
//  5. Write: emit the BOM, the placement list and the optional drawing
//
// Both inputs are read completely before anything is written. Any bad row
// aborts the run and leaves the output directory untouched.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    InputDir:      "export",
//	    RotationsPath: "rotations.cf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Outputs.BOM)
package pipeline

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pcba/pkg/assembly"
	"github.com/matzehuels/pcba/pkg/board"
	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/errors"
	"github.com/matzehuels/pcba/pkg/refdes"
	"github.com/matzehuels/pcba/pkg/rotation"
)

// Default output file names.
const (
	DefaultBOMName = "out_bom.csv"
	DefaultCPLName = "out_cpl.csv"
)

// Stage names reported to observability hooks.
const (
	StageRules       = "rules"
	StageBoard       = "board"
	StageComponents  = "components"
	StageConsolidate = "consolidate"
	StageWrite       = "write"
)

// Options configures one run.
type Options struct {
	// InputDir holds board.csv and components.csv.
	InputDir string
	// RotationsPath is the rotation rule file. Empty means no corrections.
	RotationsPath string
	// OutputDir receives the BOM and placement list. Defaults to InputDir.
	OutputDir string
	// SVGPath, if set, receives a drawing of the board.
	SVGPath string
	// SVGLabels writes designators into the drawing.
	SVGLabels bool
	// SVGScale is the drawing size in pixels per millimetre. Zero uses the
	// renderer default.
	SVGScale float64
	// SVGMargin is the border around the drawing in millimetres. Nil uses
	// the renderer default.
	SVGMargin *float64

	BOMName string
	CPLName string

	// Families adds reference prefixes on top of the built-in ones.
	Families map[string]refdes.Family

	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks the options and fills documented defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := errors.ValidateInputDir(o.InputDir); err != nil {
		return err
	}

	if o.OutputDir == "" {
		o.OutputDir = o.InputDir
	}
	info, err := os.Stat(o.OutputDir)
	if err != nil || !info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "output directory %s does not exist", o.OutputDir)
	}

	if o.SVGPath != "" {
		dir := filepath.Dir(o.SVGPath)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return errors.New(errors.ErrCodeInvalidPath, "drawing directory %s does not exist", dir)
		}
	}
	if o.SVGScale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "drawing scale must be positive, got %v", o.SVGScale)
	}
	if o.SVGMargin != nil && *o.SVGMargin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "drawing margin must not be negative, got %v", *o.SVGMargin)
	}

	if o.BOMName == "" {
		o.BOMName = DefaultBOMName
	}
	if o.CPLName == "" {
		o.CPLName = DefaultCPLName
	}
	for _, name := range []string{o.BOMName, o.CPLName} {
		if err := errors.ValidateOutputName(name); err != nil {
			return err
		}
	}
	if o.BOMName == o.CPLName {
		return errors.New(errors.ErrCodeInvalidConfig, "BOM and placement outputs share the name %q", o.BOMName)
	}

	o.validated = true
	return nil
}

// Result contains everything a run produced.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// Outline is the normalized board outline.
	Outline *board.Outline
	// Records are the components in input order.
	Records []*component.Record
	// Rules is the rotation table that was applied.
	Rules *rotation.Table

	BOM        []assembly.Line
	Placements []assembly.Placement

	// SVG is the rendered drawing, nil unless requested.
	SVG []byte

	Report  Report
	Outputs Outputs
	Stats   Stats
}

// Outputs lists the files written by a run.
type Outputs struct {
	BOM string
	CPL string
	SVG string // empty if no drawing was requested
}

// Stats contains counts and timings of a run.
type Stats struct {
	Rules      int
	Points     int
	Components int
	Lines      int
	Unmatched  int // placements that received no rotation correction

	ReadTime  time.Duration
	BuildTime time.Duration
	WriteTime time.Duration
}
