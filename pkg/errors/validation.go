package errors

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Input file names written by the exporter.
const (
	BoardFile      = "board.csv"
	ComponentsFile = "components.csv"
)

// ValidateInputDir checks that dir is an existing directory holding both
// exporter tables. It returns INVALID_PATH if dir is empty or not a
// directory and MISSING_INPUT_FILE naming the first absent table.
func ValidateInputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "input directory cannot be empty")
	}

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return New(ErrCodeInvalidPath, "%s does not exist", dir)
		}
		return Wrap(ErrCodeInvalidPath, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return New(ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	for _, name := range []string{BoardFile, ComponentsFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !info.Mode().IsRegular() {
			return New(ErrCodeMissingInputFile, "%s not found in %s", name, dir)
		}
	}
	return nil
}

// ValidateOutputName validates an output file name for safety.
// It must be a plain base name: no separators, no traversal, no control
// characters.
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "output file name cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "output file name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidConfig, "output file name cannot contain path separators: %q", name)
	}
	if name == "." || name == ".." {
		return New(ErrCodeInvalidConfig, "invalid output file name: %q", name)
	}

	return nil
}
