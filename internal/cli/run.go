package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pcba/internal/config"
	"github.com/matzehuels/pcba/pkg/errors"
	"github.com/matzehuels/pcba/pkg/pipeline"
)

// runFlags holds the flags of the root command.
type runFlags struct {
	rotations string
	output    string
	svg       string
	labels    bool
	scale     float64
	margin    float64
	config    string
	report    bool
}

func (c *CLI) runCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   appName + " <dir>",
		Short: "Turn a KiCad export into JLCPCB BOM and placement files",
		Long: `pcba reads board.csv and components.csv from an export directory and
writes a bill of materials (out_bom.csv) and a component placement list
(out_cpl.csv) in the format JLCPCB's assembly service expects.

Parts with the same value, footprint and LCSC number share one BOM line.
Rotations are corrected with a rule file mapping footprint patterns to
angle offsets.`,
		Example: `  # Write out_bom.csv and out_cpl.csv next to the export
  pcba ./export --rotations rotations.cf

  # Write to another directory and draw the board
  pcba ./export -r rotations.cf -o ./jlc --svg board.svg

  # Draw at twice the default size without a border
  pcba ./export --svg board.svg --svg-scale 20 --svg-margin 0`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_ = cmd.Usage()
				return errors.New(errors.ErrCodeInvalidPath, "expected one export directory, got %d arguments", len(args))
			}
			if err := errors.ValidateInputDir(args[0]); err != nil {
				_ = cmd.Usage()
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBoard(cmd.Context(), cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.rotations, "rotations", "r", "", "rotation rule file (pattern and delta per line)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default: the export directory)")
	cmd.Flags().StringVar(&flags.svg, "svg", "", "also draw the board to this SVG file")
	cmd.Flags().BoolVar(&flags.labels, "labels", false, "write designators into the SVG drawing")
	cmd.Flags().Float64Var(&flags.scale, "svg-scale", 0, "SVG size in pixels per millimetre (default 10)")
	cmd.Flags().Float64Var(&flags.margin, "svg-margin", 0, "blank border around the SVG drawing in millimetres (default 2)")
	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "run configuration (default: "+configName+" in the export directory, if present)")
	cmd.Flags().BoolVar(&flags.report, "report", false, "list every component with its type")

	return cmd
}

func (c *CLI) runBoard(ctx context.Context, cmd *cobra.Command, dir string, flags runFlags) error {
	logger := loggerFromContext(ctx)

	opts := pipeline.Options{
		InputDir:      dir,
		RotationsPath: flags.rotations,
		OutputDir:     flags.output,
		SVGPath:       flags.svg,
		SVGLabels:     flags.labels,
		SVGScale:      flags.scale,
		Logger:        logger,
	}
	if cmd.Flags().Changed("svg-margin") {
		opts.SVGMargin = &flags.margin
	}

	cfg, err := loadConfig(dir, flags.config)
	if err != nil {
		return err
	}
	if cfg != nil {
		if flags.config == "" {
			logger.Info("using config found in export directory", "path", cfg.Path)
		} else {
			logger.Debug("using config", "path", cfg.Path)
		}
		cfg.Apply(&opts)
	}

	prog := newProgress(logger)
	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Consolidated %d components into %d BOM lines", res.Stats.Components, res.Stats.Lines))

	printSummary(cmd.OutOrStdout(), res, flags.report)
	return nil
}

// loadConfig loads the explicit config file, or the default one in dir if
// it exists. It returns nil when there is none.
func loadConfig(dir, path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	path = filepath.Join(dir, configName)
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return config.Load(path)
}
