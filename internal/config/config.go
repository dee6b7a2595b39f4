// Package config loads the optional TOML run configuration.
//
// A configuration file sits next to a board's export and records how that
// board is processed, so a run does not depend on remembering flags:
//
//	rotations = "rotations.cf"
//	output_dir = "out"
//	svg = "board.svg"
//	svg_labels = true
//	svg_scale = 20
//	svg_margin = 1.5
//	bom_name = "out_bom.csv"
//	cpl_name = "out_cpl.csv"
//
//	[families]
//	L = "inductor"
//
// Relative paths are resolved against the directory of the file. Unknown
// keys are rejected.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pcba/pkg/errors"
	"github.com/matzehuels/pcba/pkg/pipeline"
	"github.com/matzehuels/pcba/pkg/refdes"
)

// file mirrors the TOML layout.
type file struct {
	Rotations string            `toml:"rotations"`
	OutputDir string            `toml:"output_dir"`
	SVG       string            `toml:"svg"`
	SVGLabels bool              `toml:"svg_labels"`
	SVGScale  float64           `toml:"svg_scale"`
	SVGMargin *float64          `toml:"svg_margin"`
	BOMName   string            `toml:"bom_name"`
	CPLName   string            `toml:"cpl_name"`
	Families  map[string]string `toml:"families"`
}

// Config is a decoded run configuration with paths made absolute or
// relative to the working directory.
type Config struct {
	// Path is the file the configuration was read from.
	Path string

	Rotations string
	OutputDir string
	SVG       string
	SVGLabels bool
	SVGScale  float64
	SVGMargin *float64
	BOMName   string
	CPLName   string
	Families  map[string]refdes.Family
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	cfg, err := Parse(string(data), filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a configuration document. Relative paths are joined to
// baseDir.
func Parse(doc, baseDir string) (*Config, error) {
	var f file
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg := &Config{
		Rotations: resolve(baseDir, f.Rotations),
		OutputDir: resolve(baseDir, f.OutputDir),
		SVG:       resolve(baseDir, f.SVG),
		SVGLabels: f.SVGLabels,
		SVGScale:  f.SVGScale,
		SVGMargin: f.SVGMargin,
		BOMName:   f.BOMName,
		CPLName:   f.CPLName,
	}
	if cfg.SVGScale < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "svg_scale: must be positive, got %v", cfg.SVGScale)
	}
	if cfg.SVGMargin != nil && *cfg.SVGMargin < 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "svg_margin: must not be negative, got %v", *cfg.SVGMargin)
	}

	if len(f.Families) > 0 {
		cfg.Families = make(map[string]refdes.Family, len(f.Families))
		prefixes := make([]string, 0, len(f.Families))
		for p := range f.Families {
			prefixes = append(prefixes, p)
		}
		sort.Strings(prefixes)
		for _, p := range prefixes {
			name := f.Families[p]
			if !isPrefix(p) {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "families: %q is not a reference prefix", p)
			}
			fam, ok := refdes.ParseFamily(name)
			if !ok {
				return nil, errors.New(errors.ErrCodeInvalidConfig, "families: %s: unknown variant %q", p, name)
			}
			cfg.Families[strings.ToUpper(p)] = fam
		}
	}
	return cfg, nil
}

// Apply copies configured values into opts where opts leaves them unset,
// so command-line values win.
func (c *Config) Apply(opts *pipeline.Options) {
	if c == nil {
		return
	}
	setIfEmpty(&opts.RotationsPath, c.Rotations)
	setIfEmpty(&opts.OutputDir, c.OutputDir)
	setIfEmpty(&opts.SVGPath, c.SVG)
	setIfEmpty(&opts.BOMName, c.BOMName)
	setIfEmpty(&opts.CPLName, c.CPLName)
	opts.SVGLabels = opts.SVGLabels || c.SVGLabels
	if opts.SVGScale == 0 {
		opts.SVGScale = c.SVGScale
	}
	if opts.SVGMargin == nil {
		opts.SVGMargin = c.SVGMargin
	}

	if len(c.Families) > 0 {
		merged := make(map[string]refdes.Family, len(c.Families)+len(opts.Families))
		for k, v := range c.Families {
			merged[k] = v
		}
		for k, v := range opts.Families {
			merged[k] = v
		}
		opts.Families = merged
	}
}

// isPrefix reports whether p can be the letter prefix of a reference.
func isPrefix(p string) bool {
	if p == "" {
		return false
	}
	for _, r := range p {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
