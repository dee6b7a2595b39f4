package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pcba/pkg/assembly"
	"github.com/matzehuels/pcba/pkg/board"
	"github.com/matzehuels/pcba/pkg/component"
	"github.com/matzehuels/pcba/pkg/errors"
	pcbaio "github.com/matzehuels/pcba/pkg/io"
	"github.com/matzehuels/pcba/pkg/observability"
	"github.com/matzehuels/pcba/pkg/refdes"
	"github.com/matzehuels/pcba/pkg/render"
	"github.com/matzehuels/pcba/pkg/rotation"
)

// Runner executes consolidation runs. It holds no per-run state, so one
// Runner can serve several runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs every stage and writes the outputs. On error the previous
// outputs, if any, are left as they were.
func (r *Runner) Execute(ctx context.Context, opts Options) (res *Result, err error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()[:8]
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	logger = logger.With("run", runID)

	start := time.Now()
	defer func() {
		observability.Pipeline().OnRunComplete(ctx, runID, time.Since(start), err)
	}()

	res = &Result{RunID: runID}

	// Stage 1: Rules
	d, err := stage(ctx, StageRules, func() (int, error) {
		rules, err := LoadRules(opts.RotationsPath)
		if err != nil {
			return 0, err
		}
		res.Rules = rules
		return rules.Len(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	res.Stats.Rules = res.Rules.Len()
	res.Stats.ReadTime += d
	if opts.RotationsPath == "" {
		logger.Info("no rotation rules given, rotations pass through unchanged")
	} else {
		logger.Info("loaded rotation rules", "rules", res.Stats.Rules, "source", opts.RotationsPath)
	}

	// Stage 2: Board
	d, err = stage(ctx, StageBoard, func() (int, error) {
		o, err := ReadBoard(opts.InputDir)
		if err != nil {
			return 0, err
		}
		res.Outline = o
		return o.Len(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	res.Stats.Points = res.Outline.Len()
	res.Stats.ReadTime += d
	if res.Stats.Points == 0 {
		logger.Warn("board outline has no points")
	}
	logger.Info("read board outline",
		"points", res.Stats.Points,
		"origin", fmt.Sprintf("%g,%g", res.Outline.Origin().X, res.Outline.Origin().Y),
		"duration", d)

	// Stage 3: Components
	d, err = stage(ctx, StageComponents, func() (int, error) {
		records, err := ReadRecords(opts.InputDir, res.Outline, refdes.NewClassifier(opts.Families))
		if err != nil {
			return 0, err
		}
		res.Records = records
		return len(records), nil
	})
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	res.Stats.Components = len(res.Records)
	res.Stats.ReadTime += d
	logger.Info("read components", "components", res.Stats.Components, "duration", d)

	// Stage 4: Consolidate
	d, err = stage(ctx, StageConsolidate, func() (int, error) {
		res.BOM, res.Placements = Consolidate(res.Records, res.Rules)
		return len(res.BOM), nil
	})
	if err != nil {
		return nil, fmt.Errorf("consolidate: %w", err)
	}
	res.Stats.Lines = len(res.BOM)
	res.Stats.BuildTime = d
	for _, rec := range res.Records {
		if _, ok := res.Rules.Match(rec.Footprint); !ok {
			res.Stats.Unmatched++
			logger.Debug("no rotation rule", "ref", rec.Ref, "footprint", rec.Footprint)
		}
	}
	res.Report = NewReport(res.Records)
	logger.Info("consolidated",
		"lines", res.Stats.Lines,
		"placements", len(res.Placements),
		"uncorrected", res.Stats.Unmatched,
		"duration", d)

	if opts.SVGPath != "" {
		ropts := []render.SVGOption{render.WithScale(opts.SVGScale)}
		if opts.SVGMargin != nil {
			ropts = append(ropts, render.WithMargin(*opts.SVGMargin))
		}
		if opts.SVGLabels {
			ropts = append(ropts, render.WithLabels())
		}
		res.SVG = render.RenderSVG(render.NewScene(res.Outline, res.Records), ropts...)
	}

	// Stage 5: Write
	res.Outputs = Outputs{
		BOM: filepath.Join(opts.OutputDir, opts.BOMName),
		CPL: filepath.Join(opts.OutputDir, opts.CPLName),
		SVG: opts.SVGPath,
	}
	d, err = stage(ctx, StageWrite, func() (int, error) {
		return WriteOutputs(res.Outputs, res.BOM, res.Placements, res.SVG)
	})
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	res.Stats.WriteTime = d
	logger.Info("wrote outputs", "bom", res.Outputs.BOM, "cpl", res.Outputs.CPL, "duration", d)
	if res.Outputs.SVG != "" {
		logger.Info("wrote drawing", "svg", res.Outputs.SVG)
	}

	return res, nil
}

// stage runs fn between observability events. A cancelled context stops the
// run before the stage begins.
func stage(ctx context.Context, name string, fn func() (int, error)) (time.Duration, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	hooks := observability.Pipeline()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	n, err := fn()
	d := time.Since(start)
	hooks.OnStageComplete(ctx, name, n, d, err)
	return d, err
}

// LoadRules loads the rotation table at path, or an empty table when path
// is empty.
func LoadRules(path string) (*rotation.Table, error) {
	if path == "" {
		return rotation.Empty(), nil
	}
	return rotation.Load(path)
}

// ReadBoard reads and normalizes the outline in dir.
func ReadBoard(dir string) (*board.Outline, error) {
	o, err := pcbaio.ImportOutline(filepath.Join(dir, errors.BoardFile))
	if err != nil {
		return nil, err
	}
	o.Normalize()
	return o, nil
}

// ReadRecords reads the component table in dir and builds records relative
// to the outline's origin. The first bad row stops the read; the error
// names the row.
func ReadRecords(dir string, outline *board.Outline, c *refdes.Classifier) ([]*component.Record, error) {
	rows, err := pcbaio.ImportComponents(filepath.Join(dir, errors.ComponentsFile))
	if err != nil {
		return nil, err
	}

	b := component.Builder{Origin: outline.Origin(), Classifier: c}
	records := make([]*component.Record, 0, len(rows))
	for i, f := range rows {
		rec, err := b.Build(f)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", errors.ComponentsFile, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Consolidate merges records into BOM lines and derives one placement row
// per record, both in input order.
func Consolidate(records []*component.Record, rules *rotation.Table) ([]assembly.Line, []assembly.Placement) {
	bom := assembly.NewBOM()
	placements := make([]assembly.Placement, 0, len(records))
	for _, rec := range records {
		bom.Add(rec)
		placements = append(placements, assembly.NewPlacement(rec, rules))
	}
	return bom.Lines(), placements
}

// WriteOutputs writes the BOM, the placement list and, when out.SVG is set,
// the drawing. Every file is staged beside its destination first; existing
// outputs are replaced only once all of them were staged.
func WriteOutputs(out Outputs, lines []assembly.Line, rows []assembly.Placement, svg []byte) (int, error) {
	var staged []*pcbaio.Staged
	discard := func() {
		for _, st := range staged {
			st.Discard()
		}
	}

	st, err := pcbaio.StageBOM(out.BOM, lines)
	if err != nil {
		return 0, err
	}
	staged = append(staged, st)

	if st, err = pcbaio.StagePlacement(out.CPL, rows); err != nil {
		discard()
		return 0, err
	}
	staged = append(staged, st)

	if out.SVG != "" {
		if st, err = pcbaio.StageSVG(out.SVG, svg); err != nil {
			discard()
			return 0, err
		}
		staged = append(staged, st)
	}

	for _, st := range staged {
		if err := st.Commit(); err != nil {
			discard()
			return 0, err
		}
	}
	return len(staged), nil
}
